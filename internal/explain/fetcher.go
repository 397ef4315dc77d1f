package explain

import (
	"context"
	"errors"

	"github.com/otterhq/suilens/internal/decoder"
)

// ErrTransactionNotFound indicates that the blockchain node has no
// transaction for the requested digest.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFetcher retrieves raw transactions from a blockchain node.
type TransactionFetcher interface {
	// FetchTransaction returns the raw transaction for the given digest,
	// including object changes, balance changes, commands and the gas
	// breakdown.
	//
	// Returns:
	//   - ErrTransactionNotFound (possibly wrapped) when the node has no
	//     record of the digest.
	//   - Any other error for transport or provider failures.
	FetchTransaction(ctx context.Context, digest string) (decoder.RawTransaction, error)
}
