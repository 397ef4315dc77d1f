package decoder

import (
	"fmt"
	"math/big"
)

// interpretBalanceChange converts one signed balance delta into a transfer
// operation. Positive amounts mean the owner received funds; zero and
// negative amounts are reported as sent. The asset is always the native gas
// token for this decoder version; other fungible assets are out of scope.
func (d *Decoder) interpretBalanceChange(change BalanceChange) Operation {
	amount := change.Amount
	if amount == nil {
		amount = new(big.Int)
	}

	display := formatUnits(amount, d.decimals)
	owner := shortAddr(change.Owner)

	op := Operation{
		Kind:   OpTransfer,
		Amount: display,
		Asset:  d.asset,
	}

	if amount.Sign() > 0 {
		op.To = change.Owner
		op.Description = fmt.Sprintf("%s received %s %s", owner, display, d.asset)
	} else {
		op.From = change.Owner
		op.Description = fmt.Sprintf("%s sent %s %s", owner, display, d.asset)
	}

	return op
}
