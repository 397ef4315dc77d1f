package decoder

import "github.com/otterhq/suilens/internal/pkg/types"

// extractParticipants collects the distinct addresses involved in a
// transaction: the sender, every transfer-command recipient, and the
// address owner of every created or mutated object. The result preserves
// first-seen order with no duplicates; the sender, when known, is always
// first.
func extractParticipants(tx RawTransaction) []string {
	set := types.NewOrderedSet[string]()

	if tx.Sender != "" {
		set.Add(tx.Sender)
	}

	for _, cmd := range tx.Commands {
		if cmd.TransferRecipient != "" {
			set.Add(cmd.TransferRecipient)
		}
	}

	for _, change := range tx.ObjectChanges {
		if change.Kind != ChangeCreated && change.Kind != ChangeMutated {
			continue
		}
		if change.Owner.Kind == OwnerAddress && change.Owner.Address != "" {
			set.Add(change.Owner.Address)
		}
	}

	return set.ToSlice()
}
