package contract

// The go binding is generated from the KeeperRegistryInterface abi in ../../solidity/abi

//go:generate abigen --abi ../../solidity/abi/KeeperRegistryInterface.json --pkg contract --type KeeperRegistryInterface --out keeperregistryinterface.go
