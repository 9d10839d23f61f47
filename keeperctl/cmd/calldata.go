package cmd

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/threefoldfoundation/tft/keeper/registry"
)

var bigIntType = reflect.TypeOf(&big.Int{})

// fitsSigned tells if n is within [-2^(bits-1), 2^(bits-1)-1]
func fitsSigned(n *big.Int, bits int) bool {
	if n.Sign() >= 0 {
		return n.BitLen() < bits
	}
	// -n-1 has the same bit length bound as the positive side
	return new(big.Int).Sub(new(big.Int).Neg(n), big.NewInt(1)).BitLen() < bits
}

// parseArgument converts a command line argument to the go value the abi packer expects for typ
func parseArgument(typ abi.Type, arg string) (interface{}, error) {
	switch typ.T {
	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(arg, 0)
		if !ok {
			return nil, errors.Errorf("invalid %s %q", typ, arg)
		}
		if typ.T == abi.UintTy && (n.Sign() < 0 || n.BitLen() > typ.Size) {
			return nil, errors.Errorf("%s out of range for %s", arg, typ)
		}
		if typ.T == abi.IntTy && !fitsSigned(n, typ.Size) {
			return nil, errors.Errorf("%s out of range for %s", arg, typ)
		}
		goType := typ.GetType()
		if goType == bigIntType {
			return n, nil
		}
		if typ.T == abi.UintTy {
			return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
		}
		return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
	case abi.AddressTy:
		return parseAddress(arg)
	case abi.BoolTy:
		return strconv.ParseBool(arg)
	case abi.StringTy:
		return arg, nil
	case abi.BytesTy:
		return hexutil.Decode(arg)
	}
	return nil, errors.Errorf("arguments of type %s are not supported", typ)
}

func formatValue(v interface{}) string {
	switch value := v.(type) {
	case []byte:
		return hexutil.Encode(value)
	case common.Address:
		return value.Hex()
	}
	return fmt.Sprint(v)
}

// encodeCall packs name with string arguments, converted according to the operation inputs
func encodeCall(dec *registry.Decoder, name string, args []string) ([]byte, error) {
	method, found := dec.ABI().Methods[name]
	if !found {
		return nil, errors.Wrap(registry.ErrUnknownOperation, name)
	}
	if len(args) != len(method.Inputs) {
		return nil, errors.Errorf("%s takes %d arguments, got %d", method.Sig, len(method.Inputs), len(args))
	}
	values := make([]interface{}, len(args))
	for i, arg := range args {
		value, err := parseArgument(method.Inputs[i].Type, arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %s", method.Inputs[i].Name)
		}
		values[i] = value
	}
	return dec.EncodeCall(name, values...)
}

var (
	calldataEncodeCmd = &cobra.Command{
		Use:     "encode [operation] [arguments...]",
		Short:   "encode a call to a registry operation",
		Example: "encode addFunds 12 1000000000000000000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := registry.NewKeeperRegistryFactory().CreateDecoder()
			if err != nil {
				return err
			}
			data, err := encodeCall(dec, args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Println(hexutil.Encode(data))
			return nil
		},
	}

	calldataDecodeCmd = &cobra.Command{
		Use:   "decode [calldata]",
		Short: "decode hex encoded calldata of a registry operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hexutil.Decode(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid calldata")
			}
			dec, err := registry.NewKeeperRegistryFactory().CreateDecoder()
			if err != nil {
				return err
			}
			name, values, err := dec.DecodeCall(data)
			if err != nil {
				return err
			}
			op, _ := dec.Operation(name)
			fmt.Println(op.Signature())
			for i, value := range values {
				fmt.Printf("  %s: %s\n", op.Inputs[i].Name, formatValue(value))
			}
			return nil
		},
	}
)
