package decoder

import (
	"fmt"
	"math/big"
)

// accountGas computes the net gas cost (computation + storage - rebate) and
// renders it as the transaction's final operation, attributed to the sender.
// A rebate exceeding the combined cost indicates a malformed record; the net
// is clamped to zero rather than wrapping.
func (d *Decoder) accountGas(gas GasSummary, sender string) (Operation, string) {
	net := new(big.Int).SetUint64(gas.ComputationCost)
	net.Add(net, new(big.Int).SetUint64(gas.StorageCost))
	net.Sub(net, new(big.Int).SetUint64(gas.StorageRebate))
	if net.Sign() < 0 {
		net.SetInt64(0)
	}

	display := formatUnits(net, d.decimals)

	op := Operation{
		Kind:        OpTransfer,
		From:        sender,
		Amount:      display,
		Asset:       d.asset,
		Description: fmt.Sprintf("Gas fee: %s %s paid by %s to validators", display, d.asset, shortAddr(sender)),
	}
	return op, display
}
