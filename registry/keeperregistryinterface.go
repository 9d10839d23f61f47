package registry

// KeeperRegistryInterface is the operation table of the chainlink KeeperRegistryInterface contract.
// It has to stay in sync with solidity/abi/KeeperRegistryInterface.json.
var KeeperRegistryInterface = MustDescriptor(
	Operation{
		Name: "addFunds",
		Inputs: []Argument{
			{Name: "id", Type: "uint256"},
			{Name: "amount", Type: "uint96"},
		},
		Mutability: StateChanging,
	},
	Operation{
		Name: "cancelUpkeep",
		Inputs: []Argument{
			{Name: "id", Type: "uint256"},
		},
		Mutability: StateChanging,
	},
	Operation{
		Name: "checkUpkeep",
		Inputs: []Argument{
			{Name: "upkeepId", Type: "uint256"},
			{Name: "from", Type: "address"},
		},
		Outputs: []Argument{
			{Name: "performData", Type: "bytes"},
			{Name: "maxLinkPayment", Type: "uint256"},
			{Name: "gasLimit", Type: "uint256"},
			{Name: "gasWei", Type: "int256"},
			{Name: "linkEth", Type: "int256"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getCanceledUpkeepList",
		Outputs: []Argument{
			{Name: "", Type: "uint256[]"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getConfig",
		Outputs: []Argument{
			{Name: "paymentPremiumPPB", Type: "uint32"},
			{Name: "checkFrequencyBlocks", Type: "uint24"},
			{Name: "checkGasLimit", Type: "uint32"},
			{Name: "stalenessSeconds", Type: "uint24"},
			{Name: "gasCeilingMultiplier", Type: "uint16"},
			{Name: "fallbackGasPrice", Type: "uint256"},
			{Name: "fallbackLinkPrice", Type: "uint256"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getKeeperInfo",
		Inputs: []Argument{
			{Name: "query", Type: "address"},
		},
		Outputs: []Argument{
			{Name: "payee", Type: "address"},
			{Name: "active", Type: "bool"},
			{Name: "balance", Type: "uint96"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getKeeperList",
		Outputs: []Argument{
			{Name: "", Type: "address[]"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getUpkeep",
		Inputs: []Argument{
			{Name: "id", Type: "uint256"},
		},
		Outputs: []Argument{
			{Name: "target", Type: "address"},
			{Name: "executeGas", Type: "uint32"},
			{Name: "checkData", Type: "bytes"},
			{Name: "balance", Type: "uint96"},
			{Name: "lastKeeper", Type: "address"},
			{Name: "admin", Type: "address"},
			{Name: "maxValidBlocknumber", Type: "uint64"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "getUpkeepCount",
		Outputs: []Argument{
			{Name: "", Type: "uint256"},
		},
		Mutability: ReadOnly,
	},
	Operation{
		Name: "performUpkeep",
		Inputs: []Argument{
			{Name: "id", Type: "uint256"},
			{Name: "performData", Type: "bytes"},
		},
		Outputs: []Argument{
			{Name: "success", Type: "bool"},
		},
		Mutability: StateChanging,
	},
	Operation{
		Name: "registerUpkeep",
		Inputs: []Argument{
			{Name: "target", Type: "address"},
			{Name: "gasLimit", Type: "uint32"},
			{Name: "admin", Type: "address"},
			{Name: "checkData", Type: "bytes"},
		},
		Outputs: []Argument{
			{Name: "id", Type: "uint256"},
		},
		Mutability: StateChanging,
	},
)
