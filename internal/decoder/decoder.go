// Package decoder derives structured, human-readable transaction details from
// raw Sui transaction records.
//
// The decode pipeline is pure: it performs no I/O, keeps no state between
// calls, and is safe for any number of concurrent callers. Every optional
// field absence degrades to a documented fallback string; adversarial or
// partial records never cause a failure.
package decoder

import (
	"fmt"
	"math/big"
	"time"

	"github.com/otterhq/suilens/internal/registry"
)

const (
	// defaultCoinDecimals is the smallest-unit scale of the native gas token
	// (1 SUI = 10^9 MIST).
	defaultCoinDecimals = 9

	// defaultNativeAsset is the display symbol of the native gas token.
	defaultNativeAsset = "SUI"

	// displayPlaces is the number of fractional digits shown for amounts.
	displayPlaces = 6
)

// Decoder turns RawTransaction records into TransactionDetails. The zero
// value is not usable; construct with New.
type Decoder struct {
	reg      *registry.Registry
	decimals int
	asset    string
}

// Option customizes a Decoder during construction.
type Option func(*Decoder)

// WithCoinDecimals overrides the smallest-unit decimal scale used for balance
// and gas amounts. Default: 9.
func WithCoinDecimals(n int) Option {
	return func(d *Decoder) {
		d.decimals = n
	}
}

// WithNativeAsset overrides the display symbol used for balance and gas
// amounts. Default: "SUI".
func WithNativeAsset(symbol string) Option {
	return func(d *Decoder) {
		d.asset = symbol
	}
}

// New constructs a Decoder resolving names through the given registry.
func New(reg *registry.Registry, opts ...Option) *Decoder {
	d := &Decoder{
		reg:      reg,
		decimals: defaultCoinDecimals,
		asset:    defaultNativeAsset,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode derives the full TransactionDetails for one raw transaction record.
//
// Operations are appended in a fixed order: one per object-change record, one
// per balance-change record, then exactly one gas-fee operation, so the
// operation count is always len(ObjectChanges) + len(BalanceChanges) + 1.
// Move-call narratives are not part of the operation list; use
// DescribeMoveCall to render them.
func (d *Decoder) Decode(tx RawTransaction) TransactionDetails {
	operations := make([]Operation, 0, len(tx.ObjectChanges)+len(tx.BalanceChanges)+1)

	for _, change := range tx.ObjectChanges {
		operations = append(operations, d.classifyObjectChange(change, tx.Sender))
	}
	for _, change := range tx.BalanceChanges {
		operations = append(operations, d.interpretBalanceChange(change))
	}

	gasOp, gasUsed := d.accountGas(tx.Gas, tx.Sender)
	operations = append(operations, gasOp)

	moveCalls := ExtractMoveCalls(tx)

	var protocolName string
	if len(moveCalls) > 0 {
		protocolName = d.reg.ProtocolName(moveCalls[0].Package)
	}
	validatorName, _ := d.reg.ValidatorName(tx.Sender)
	exchangeName, _ := d.reg.ExchangeName(tx.Sender)

	var timestamp time.Time
	if tx.TimestampMs > 0 {
		timestamp = time.UnixMilli(tx.TimestampMs).UTC()
	}

	return TransactionDetails{
		Digest:        tx.Digest,
		GasUsed:       gasUsed,
		Participants:  extractParticipants(tx),
		Operations:    operations,
		MoveCalls:     moveCalls,
		Timestamp:     timestamp,
		ProtocolName:  protocolName,
		ValidatorName: validatorName,
		ExchangeName:  exchangeName,
	}
}

// shortAddr renders an address in shortened display form, with "Unknown" for
// absent addresses.
func shortAddr(address string) string {
	if address == "" {
		return "Unknown"
	}
	return registry.FormatAddress(address)
}

// pow10 returns 10^n as a big integer. n must be non-negative.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// formatUnits renders the absolute value of a smallest-unit amount as a
// decimal string with exactly displayPlaces fractional digits, rounding half
// away from zero.
func formatUnits(v *big.Int, decimals int) string {
	abs := new(big.Int).Abs(v)

	den := pow10(decimals)
	num := new(big.Int).Mul(abs, pow10(displayPlaces))
	num.Add(num, new(big.Int).Quo(den, big.NewInt(2)))
	num.Quo(num, den)

	scale := pow10(displayPlaces)
	intPart := new(big.Int).Quo(num, scale)
	fracPart := new(big.Int).Mod(num, scale)

	return fmt.Sprintf("%s.%06d", intPart.String(), fracPart.Int64())
}
