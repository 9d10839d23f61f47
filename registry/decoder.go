package registry

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Decoder encodes calls to and decodes calldata and results of the operations in a Descriptor.
type Decoder struct {
	descriptor *Descriptor
	abi        abi.ABI
}

// NewDecoder creates a Decoder for the given operation table
func NewDecoder(d *Descriptor) (*Decoder, error) {
	parsed, err := d.ABI()
	if err != nil {
		return nil, err
	}
	return &Decoder{descriptor: d, abi: parsed}, nil
}

// ABI returns the parsed go-ethereum ABI backing this decoder
func (dec *Decoder) ABI() abi.ABI {
	return dec.abi
}

// Descriptor returns the operation table of this decoder
func (dec *Decoder) Descriptor() *Descriptor {
	return dec.descriptor
}

// Operation returns the declared shape of the named operation
func (dec *Decoder) Operation(name string) (Operation, bool) {
	return dec.descriptor.Operation(name)
}

func (dec *Decoder) method(name string) (abi.Method, error) {
	m, ok := dec.abi.Methods[name]
	if !ok {
		return abi.Method{}, errors.Wrap(ErrUnknownOperation, name)
	}
	return m, nil
}

// Selector returns the 4 byte method id of the named operation
func (dec *Decoder) Selector(name string) ([]byte, error) {
	m, err := dec.method(name)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), m.ID...), nil
}

// EncodeCall packs a call to the named operation, selector included
func (dec *Decoder) EncodeCall(name string, args ...interface{}) ([]byte, error) {
	if _, err := dec.method(name); err != nil {
		return nil, err
	}
	data, err := dec.abi.Pack(name, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", name)
	}
	return data, nil
}

// DecodeCall resolves the operation from the selector in data and unpacks its arguments
func (dec *Decoder) DecodeCall(data []byte) (string, []interface{}, error) {
	if len(data) < 4 {
		return "", nil, errors.Wrap(ErrUnknownSelector, "calldata shorter than a selector")
	}
	m, err := dec.abi.MethodById(data[:4])
	if err != nil {
		return "", nil, errors.Wrapf(ErrUnknownSelector, "%x", data[:4])
	}
	args, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to decode %s arguments", m.Name)
	}
	return m.Name, args, nil
}

// DecodeOutputs unpacks the return data of the named operation
func (dec *Decoder) DecodeOutputs(name string, data []byte) ([]interface{}, error) {
	if _, err := dec.method(name); err != nil {
		return nil, err
	}
	out, err := dec.abi.Unpack(name, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s outputs", name)
	}
	return out, nil
}
