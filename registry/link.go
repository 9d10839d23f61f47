package registry

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// LinkDecimals is the number of decimals of the LINK token
const LinkDecimals = 18

// JuelsToLink converts an amount in juels, the smallest LINK unit, to LINK
func JuelsToLink(juels *big.Int) decimal.Decimal {
	if juels == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(juels, -LinkDecimals)
}
