package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/explain"
)

type (
	// OwnerResponse represents the polymorphic owner field of the Sui API.
	// It is either the string "Immutable" or an object with exactly one of
	// the AddressOwner, ObjectOwner or Shared keys.
	OwnerResponse struct {
		AddressOwner string
		ObjectOwner  string
		Shared       bool
		Immutable    bool
	}

	// ObjectChangeResponse represents one entry of the objectChanges array.
	ObjectChangeResponse struct {
		Type       string         `json:"type"`
		Sender     string         `json:"sender"`
		Owner      *OwnerResponse `json:"owner"`
		ObjectType string         `json:"objectType"`
		ObjectID   string         `json:"objectId"`
	}

	// BalanceChangeResponse represents one entry of the balanceChanges array.
	BalanceChangeResponse struct {
		Owner    *OwnerResponse `json:"owner"`
		CoinType string         `json:"coinType"`
		Amount   string         `json:"amount"`
	}

	// MoveCallResponse represents a programmable MoveCall command.
	MoveCallResponse struct {
		Package   string          `json:"package"`
		Module    string          `json:"module"`
		Function  string          `json:"function"`
		Arguments []ArgumentValue `json:"arguments"`
	}

	// TransferObjectsResponse represents a TransferObjects command.
	TransferObjectsResponse struct {
		Recipient string `json:"recipient"`
	}

	// CommandResponse represents one programmable transaction command. Only
	// the shapes the decoder consumes are modeled; other command kinds
	// deserialize to an empty value and are skipped.
	CommandResponse struct {
		MoveCall        *MoveCallResponse        `json:"MoveCall"`
		TransferObjects *TransferObjectsResponse `json:"TransferObjects"`
	}

	// GasUsedResponse represents the gas breakdown of the transaction
	// effects. All values are decimal strings in MIST.
	GasUsedResponse struct {
		ComputationCost string `json:"computationCost"`
		StorageCost     string `json:"storageCost"`
		StorageRebate   string `json:"storageRebate"`
	}

	// TransactionBlockResponse represents the relevant subset of a
	// sui_getTransactionBlock result.
	TransactionBlockResponse struct {
		Digest      string `json:"digest"`
		TimestampMs string `json:"timestampMs"`
		Transaction struct {
			Data struct {
				Sender      string `json:"sender"`
				Transaction struct {
					Transactions []CommandResponse `json:"transactions"`
				} `json:"transaction"`
			} `json:"data"`
		} `json:"transaction"`
		Effects struct {
			GasUsed GasUsedResponse `json:"gasUsed"`
		} `json:"effects"`
		ObjectChanges  []ObjectChangeResponse  `json:"objectChanges"`
		BalanceChanges []BalanceChangeResponse `json:"balanceChanges"`
	}
)

// ArgumentValue is a Move-call argument in whichever shape the node sent
// it. Plain strings keep their value; structured arguments (input and
// result references) keep their compact JSON encoding.
type ArgumentValue string

// UnmarshalJSON accepts either a JSON string or any other JSON value.
func (a *ArgumentValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ArgumentValue(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*a = ArgumentValue(buf.String())
	return nil
}

// UnmarshalJSON decodes the two wire encodings of an owner: the bare string
// "Immutable" and the single-key object variants.
func (o *OwnerResponse) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OwnerResponse{Immutable: s == "Immutable"}
		return nil
	}

	var obj struct {
		AddressOwner string          `json:"AddressOwner"`
		ObjectOwner  string          `json:"ObjectOwner"`
		Shared       json.RawMessage `json:"Shared"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*o = OwnerResponse{
		AddressOwner: obj.AddressOwner,
		ObjectOwner:  obj.ObjectOwner,
		Shared:       len(obj.Shared) > 0,
	}
	return nil
}

// toDecoderOwner converts an OwnerResponse to the decoder's owner model.
func (o *OwnerResponse) toDecoderOwner() decoder.Owner {
	switch {
	case o == nil:
		return decoder.Owner{Kind: decoder.OwnerAbsent}
	case o.Immutable:
		return decoder.Owner{Kind: decoder.OwnerImmutable}
	case o.Shared:
		return decoder.Owner{Kind: decoder.OwnerShared}
	case o.AddressOwner != "":
		return decoder.Owner{Kind: decoder.OwnerAddress, Address: o.AddressOwner}
	case o.ObjectOwner != "":
		return decoder.Owner{Kind: decoder.OwnerAddress, Address: o.ObjectOwner}
	default:
		return decoder.Owner{Kind: decoder.OwnerAbsent}
	}
}

// ownerAddress returns the plain address behind the owner, if any.
func (o *OwnerResponse) ownerAddress() string {
	if o == nil {
		return ""
	}
	if o.AddressOwner != "" {
		return o.AddressOwner
	}
	return o.ObjectOwner
}

// toDecoderTransaction converts the API response into the decoder's raw
// transaction model. Numeric strings that fail to parse degrade to zero so
// one malformed field never discards the rest of the record.
func (t TransactionBlockResponse) toDecoderTransaction() decoder.RawTransaction {
	objectChanges := make([]decoder.ObjectChange, len(t.ObjectChanges))
	for i, change := range t.ObjectChanges {
		objectChanges[i] = decoder.ObjectChange{
			Kind:       decoder.ChangeKind(change.Type),
			ObjectID:   change.ObjectID,
			ObjectType: change.ObjectType,
			Owner:      change.Owner.toDecoderOwner(),
			Sender:     change.Sender,
		}
	}

	balanceChanges := make([]decoder.BalanceChange, len(t.BalanceChanges))
	for i, change := range t.BalanceChanges {
		amount, ok := new(big.Int).SetString(change.Amount, 10)
		if !ok {
			amount = new(big.Int)
		}
		balanceChanges[i] = decoder.BalanceChange{
			Owner:    change.Owner.ownerAddress(),
			CoinType: change.CoinType,
			Amount:   amount,
		}
	}

	commands := make([]decoder.Command, 0, len(t.Transaction.Data.Transaction.Transactions))
	for _, cmd := range t.Transaction.Data.Transaction.Transactions {
		var converted decoder.Command
		if cmd.MoveCall != nil {
			args := make([]string, len(cmd.MoveCall.Arguments))
			for i, arg := range cmd.MoveCall.Arguments {
				args[i] = string(arg)
			}
			converted.MoveCall = &decoder.MoveCall{
				Package:   cmd.MoveCall.Package,
				Module:    cmd.MoveCall.Module,
				Function:  cmd.MoveCall.Function,
				Arguments: args,
			}
		}
		if cmd.TransferObjects != nil {
			converted.TransferRecipient = cmd.TransferObjects.Recipient
		}
		commands = append(commands, converted)
	}

	timestampMs, _ := strconv.ParseInt(t.TimestampMs, 10, 64)

	return decoder.RawTransaction{
		Digest:      t.Digest,
		Sender:      t.Transaction.Data.Sender,
		TimestampMs: timestampMs,
		Commands:    commands,
		Gas: decoder.GasSummary{
			ComputationCost: parseGasValue(t.Effects.GasUsed.ComputationCost),
			StorageCost:     parseGasValue(t.Effects.GasUsed.StorageCost),
			StorageRebate:   parseGasValue(t.Effects.GasUsed.StorageRebate),
		},
		ObjectChanges:  objectChanges,
		BalanceChanges: balanceChanges,
	}
}

// parseGasValue parses a decimal gas string, treating malformed or missing
// values as zero.
func parseGasValue(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// FetchTransaction retrieves the transaction block for the given digest with
// all the sections the decoder consumes enabled.
func (c *client) FetchTransaction(ctx context.Context, digest string) (decoder.RawTransaction, error) {
	data, err := c.conn.Fetch(ctx, "sui_getTransactionBlock", digest, map[string]bool{
		"showInput":          true,
		"showEffects":        true,
		"showEvents":         true,
		"showObjectChanges":  true,
		"showBalanceChanges": true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Could not find the referenced transaction") {
			return decoder.RawTransaction{}, fmt.Errorf("%w: %s", explain.ErrTransactionNotFound, digest)
		}
		return decoder.RawTransaction{}, err
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return decoder.RawTransaction{}, fmt.Errorf("%w: %s", explain.ErrTransactionNotFound, digest)
	}

	var res TransactionBlockResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return decoder.RawTransaction{}, err
	}

	return res.toDecoderTransaction(), nil
}
