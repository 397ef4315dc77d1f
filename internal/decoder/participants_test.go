package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParticipants(t *testing.T) {
	t.Run("should list the sender first", func(t *testing.T) {
		tx := RawTransaction{
			Sender: "0xsender",
			Commands: []Command{
				{TransferRecipient: "0xrecipient"},
			},
		}

		assert.Equal(t, []string{"0xsender", "0xrecipient"}, extractParticipants(tx))
	})

	t.Run("should include owners of created and mutated objects", func(t *testing.T) {
		tx := RawTransaction{
			Sender: "0xsender",
			ObjectChanges: []ObjectChange{
				{Kind: ChangeCreated, Owner: Owner{Kind: OwnerAddress, Address: "0xcreated"}},
				{Kind: ChangeMutated, Owner: Owner{Kind: OwnerAddress, Address: "0xmutated"}},
				{Kind: ChangeDeleted, Owner: Owner{Kind: OwnerAddress, Address: "0xdeleted"}},
				{Kind: ChangeMutated, Owner: Owner{Kind: OwnerShared}},
			},
		}

		assert.Equal(t, []string{"0xsender", "0xcreated", "0xmutated"}, extractParticipants(tx))
	})

	t.Run("should deduplicate while preserving first-seen order", func(t *testing.T) {
		tx := RawTransaction{
			Sender: "0xsender",
			Commands: []Command{
				{TransferRecipient: "0xother"},
				{TransferRecipient: "0xsender"},
				{TransferRecipient: "0xother"},
			},
			ObjectChanges: []ObjectChange{
				{Kind: ChangeCreated, Owner: Owner{Kind: OwnerAddress, Address: "0xother"}},
			},
		}

		participants := extractParticipants(tx)
		assert.Equal(t, []string{"0xsender", "0xother"}, participants)

		seen := make(map[string]struct{}, len(participants))
		for _, p := range participants {
			seen[p] = struct{}{}
		}
		assert.Len(t, seen, len(participants))
	})

	t.Run("should handle an absent sender", func(t *testing.T) {
		tx := RawTransaction{
			Commands: []Command{
				{TransferRecipient: "0xrecipient"},
			},
		}

		assert.Equal(t, []string{"0xrecipient"}, extractParticipants(tx))
	})
}
