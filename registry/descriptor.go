package registry

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Mutability tells if an operation can change the state of the contract
type Mutability int

const (
	// ReadOnly operations are executed with eth_call and never cost gas
	ReadOnly Mutability = iota
	// StateChanging operations have to be submitted as a signed transaction
	StateChanging
)

// String returns the solidity state mutability keyword
func (m Mutability) String() string {
	if m == ReadOnly {
		return "view"
	}
	return "nonpayable"
}

// Argument is a named and typed input or output of an operation
type Argument struct {
	Name string
	Type string
}

// Operation is a single callable function of a remote contract
type Operation struct {
	Name       string
	Inputs     []Argument
	Outputs    []Argument
	Mutability Mutability
}

// Signature returns the canonical signature, e.g. addFunds(uint256,uint96)
func (op Operation) Signature() string {
	types := make([]string, len(op.Inputs))
	for i, in := range op.Inputs {
		types[i] = in.Type
	}
	return op.Name + "(" + strings.Join(types, ",") + ")"
}

func (op Operation) clone() Operation {
	c := op
	c.Inputs = append([]Argument(nil), op.Inputs...)
	c.Outputs = append([]Argument(nil), op.Outputs...)
	return c
}

// Descriptor is the ordered, immutable operation table of a contract interface.
// Operation names are unique.
type Descriptor struct {
	operations []Operation
	index      map[string]int
}

// NewDescriptor creates a Descriptor from the given operations, keeping their order.
func NewDescriptor(operations ...Operation) (*Descriptor, error) {
	d := &Descriptor{
		operations: make([]Operation, 0, len(operations)),
		index:      make(map[string]int, len(operations)),
	}
	for _, op := range operations {
		if op.Name == "" {
			return nil, errors.New("operation without a name")
		}
		if _, exists := d.index[op.Name]; exists {
			return nil, errors.Errorf("duplicate operation %s", op.Name)
		}
		d.index[op.Name] = len(d.operations)
		d.operations = append(d.operations, op.clone())
	}
	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on an invalid table.
// It is meant for static tables.
func MustDescriptor(operations ...Operation) *Descriptor {
	d, err := NewDescriptor(operations...)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of operations
func (d *Descriptor) Len() int {
	return len(d.operations)
}

// Operations returns a copy of the operation table
func (d *Descriptor) Operations() []Operation {
	ops := make([]Operation, len(d.operations))
	for i, op := range d.operations {
		ops[i] = op.clone()
	}
	return ops
}

// Names returns the operation names in table order
func (d *Descriptor) Names() []string {
	names := make([]string, len(d.operations))
	for i, op := range d.operations {
		names[i] = op.Name
	}
	return names
}

// Operation looks up an operation by name
func (d *Descriptor) Operation(name string) (Operation, bool) {
	i, ok := d.index[name]
	if !ok {
		return Operation{}, false
	}
	return d.operations[i].clone(), true
}

type abiArgument struct {
	InternalType string `json:"internalType"`
	Name         string `json:"name"`
	Type         string `json:"type"`
}

type abiEntry struct {
	Inputs          []abiArgument `json:"inputs"`
	Name            string        `json:"name"`
	Outputs         []abiArgument `json:"outputs"`
	StateMutability string        `json:"stateMutability"`
	Type            string        `json:"type"`
}

func toABIArguments(args []Argument) []abiArgument {
	out := make([]abiArgument, 0, len(args))
	for _, a := range args {
		out = append(out, abiArgument{InternalType: a.Type, Name: a.Name, Type: a.Type})
	}
	return out
}

// JSON renders the table in the solidity ABI json format
func (d *Descriptor) JSON() ([]byte, error) {
	entries := make([]abiEntry, 0, len(d.operations))
	for _, op := range d.operations {
		entries = append(entries, abiEntry{
			Inputs:          toABIArguments(op.Inputs),
			Name:            op.Name,
			Outputs:         toABIArguments(op.Outputs),
			StateMutability: op.Mutability.String(),
			Type:            "function",
		})
	}
	return json.Marshal(entries)
}

// ABI parses the table into a go-ethereum ABI definition
func (d *Descriptor) ABI() (abi.ABI, error) {
	j, err := d.JSON()
	if err != nil {
		return abi.ABI{}, err
	}
	parsed, err := abi.JSON(bytes.NewReader(j))
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to parse operation table")
	}
	return parsed, nil
}
