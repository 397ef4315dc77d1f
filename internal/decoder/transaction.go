package decoder

import (
	"math/big"
	"time"
)

// ChangeKind identifies the lifecycle event an object-change record describes.
type ChangeKind string

const (
	ChangeCreated     ChangeKind = "created"
	ChangeMutated     ChangeKind = "mutated"
	ChangeTransferred ChangeKind = "transferred"
	ChangeDeleted     ChangeKind = "deleted"
	ChangePublished   ChangeKind = "published"
)

// OwnerKind identifies how an on-chain object is owned.
type OwnerKind int

const (
	// OwnerAbsent means the record carried no ownership information.
	OwnerAbsent OwnerKind = iota
	// OwnerAddress means the object is owned by a single address.
	OwnerAddress
	// OwnerShared means the object is a shared object.
	OwnerShared
	// OwnerImmutable means the object is frozen.
	OwnerImmutable
)

// Owner describes the ownership of an on-chain object. Address is only set
// when Kind is OwnerAddress.
type Owner struct {
	Kind    OwnerKind
	Address string
}

// ObjectChange is one on-chain object lifecycle event within a transaction.
// ObjectType may be empty; classification degrades to generic descriptions
// in that case.
type ObjectChange struct {
	Kind       ChangeKind
	ObjectID   string
	ObjectType string
	Owner      Owner
	// Sender is the transfer originator carried on the record itself, when
	// present. Transfers without it fall back to the transaction sender.
	Sender string
}

// BalanceChange is one signed coin balance delta, in the chain's smallest
// unit. A negative amount means the owner's balance decreased.
type BalanceChange struct {
	Owner    string
	CoinType string
	Amount   *big.Int
}

// MoveCall identifies one smart-contract function invocation.
type MoveCall struct {
	Package   string
	Module    string
	Function  string
	Arguments []string
}

// Command is one entry of the transaction's command list. Exactly one field
// is populated per entry; unknown command shapes leave both empty and are
// skipped by the extractors.
type Command struct {
	MoveCall *MoveCall
	// TransferRecipient is the recipient address of a TransferObjects-style
	// command, when present.
	TransferRecipient string
}

// GasSummary is the gas-used breakdown from the transaction effects, in the
// chain's smallest unit.
type GasSummary struct {
	ComputationCost uint64
	StorageCost     uint64
	StorageRebate   uint64
}

// RawTransaction is the typed view of one transaction record fetched from a
// fullnode. It is validated once at the RPC boundary; every field except
// Digest may be zero-valued, and the decoder degrades gracefully on any
// absence. The decoder never mutates it.
type RawTransaction struct {
	Digest         string
	Sender         string
	TimestampMs    int64
	ObjectChanges  []ObjectChange
	BalanceChanges []BalanceChange
	Commands       []Command
	Gas            GasSummary
}

// OperationKind classifies a derived operation.
type OperationKind string

const (
	OpTransfer OperationKind = "transfer"
	OpCreate   OperationKind = "create"
	OpMutate   OperationKind = "mutate"
	OpDelete   OperationKind = "delete"
	OpCall     OperationKind = "call"
	OpPublish  OperationKind = "publish"
)

// Operation is one human-readable unit of what a transaction did. Operations
// are immutable once produced and consumed only for display and narration.
type Operation struct {
	Kind        OperationKind
	From        string
	To          string
	Amount      string
	Asset       string
	ObjectID    string
	ObjectType  string
	Description string
}

// TransactionDetails is the decoder's output for one transaction.
//
// Operations holds object-change operations first, balance-change operations
// second, and a single gas-fee operation last, each group in input order.
// Participants is deduplicated and insertion-ordered, with the sender first
// when known.
type TransactionDetails struct {
	Digest        string
	GasUsed       string
	Participants  []string
	Operations    []Operation
	MoveCalls     []MoveCall
	Timestamp     time.Time
	ProtocolName  string
	ValidatorName string
	ExchangeName  string
}
