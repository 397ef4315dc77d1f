package decoder

import (
	"fmt"
	"strings"

	"github.com/otterhq/suilens/internal/registry"
)

// typeInfo is the parsed form of a fully-qualified Move type tag such as
// "0x2::coin::Coin<0x2::sui::SUI>". All fields may be empty for malformed or
// absent tags.
type typeInfo struct {
	PackageID  string
	Module     string
	TypeName   string
	TypeParams []string
}

// parseObjectType splits a type tag into package, module and bare type name,
// extracting the comma-separated generic parameters between the outermost
// angle brackets. Malformed tags produce partially-filled results, never an
// error.
func parseObjectType(objectType string) typeInfo {
	if objectType == "" {
		return typeInfo{}
	}

	base := objectType
	var params []string
	if open := strings.Index(objectType, "<"); open != -1 {
		base = objectType[:open]
		if close := strings.LastIndex(objectType, ">"); close > open {
			for _, p := range strings.Split(objectType[open+1:close], ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}
	}

	info := typeInfo{TypeParams: params}
	parts := strings.Split(base, "::")
	if len(parts) > 0 {
		info.PackageID = parts[0]
	}
	if len(parts) > 1 {
		info.Module = parts[1]
	}
	if len(parts) > 2 {
		info.TypeName = parts[2]
	}
	return info
}

// objectRule pairs a predicate over a parsed object type with a description
// template. Rules are evaluated in priority order and the first match wins;
// the final rule matches everything, so classification is total.
type objectRule struct {
	applies  func(d *Decoder, info typeInfo) bool
	describe func(d *Decoder, info typeInfo, objectType string, created bool) string
}

var objectRules = []objectRule{
	{
		// Liquidity pools carry their trading pair as the first two type params.
		applies: func(d *Decoder, info typeInfo) bool {
			return info.TypeName == "Pool" && len(info.TypeParams) >= 2
		},
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			protocol := d.reg.ProtocolName(info.PackageID)
			pair := d.reg.TokenSymbol(info.TypeParams[0]) + "/" + d.reg.TokenSymbol(info.TypeParams[1])
			if created {
				return fmt.Sprintf("Created %s liquidity pool (%s)", protocol, pair)
			}
			return fmt.Sprintf("Updated %s pool (%s)", protocol, pair)
		},
	},
	{
		applies: func(d *Decoder, info typeInfo) bool { return info.TypeName == "Position" },
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			protocol := d.reg.ProtocolName(info.PackageID)
			if created {
				return fmt.Sprintf("Opened position in %s", protocol)
			}
			return fmt.Sprintf("Modified %s position", protocol)
		},
	},
	{
		applies: func(d *Decoder, info typeInfo) bool { return info.TypeName == "Coin" },
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			// Coin<T> carries the actual coin type as its parameter.
			tag := objectType
			if len(info.TypeParams) > 0 {
				tag = info.TypeParams[0]
			}
			symbol := d.reg.TokenSymbol(tag)
			if created {
				return fmt.Sprintf("Minted %s tokens", symbol)
			}
			return fmt.Sprintf("Updated %s balance", symbol)
		},
	},
	{
		applies: func(d *Decoder, info typeInfo) bool {
			name := strings.ToLower(info.TypeName)
			return strings.Contains(name, "nft") ||
				strings.Contains(name, "token") ||
				strings.Contains(name, "item")
		},
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			if created {
				return "Created NFT/collectible"
			}
			return "Updated NFT/collectible"
		},
	},
	{
		applies: func(d *Decoder, info typeInfo) bool {
			return d.reg.ProtocolName(info.PackageID) != registry.UnknownProtocol
		},
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			protocol := d.reg.ProtocolName(info.PackageID)
			if created {
				return fmt.Sprintf("Created %s %s object", protocol, info.Module)
			}
			return fmt.Sprintf("Updated %s %s", protocol, info.Module)
		},
	},
	{
		// Terminal fallback.
		applies: func(d *Decoder, info typeInfo) bool { return true },
		describe: func(d *Decoder, info typeInfo, objectType string, created bool) string {
			if created {
				return "Created new object"
			}
			return "Updated object"
		},
	},
}

// describeObject runs the rule list over a created or mutated object type.
func (d *Decoder) describeObject(objectType string, created bool) string {
	info := parseObjectType(objectType)
	for _, rule := range objectRules {
		if rule.applies(d, info) {
			return rule.describe(d, info, objectType, created)
		}
	}
	return "" // unreachable: the final rule always applies
}

// classifyObjectChange turns one object-change record into an Operation.
// Unrecognized change kinds degrade to a generic mutate operation.
func (d *Decoder) classifyObjectChange(change ObjectChange, sender string) Operation {
	op := Operation{
		ObjectID:   change.ObjectID,
		ObjectType: change.ObjectType,
	}

	switch change.Kind {
	case ChangeCreated:
		op.Kind = OpCreate
		op.Description = d.describeObject(change.ObjectType, true)
		if change.Owner.Kind == OwnerAddress {
			op.To = change.Owner.Address
		}

	case ChangeMutated:
		op.Kind = OpMutate
		op.Description = d.describeObject(change.ObjectType, false)
		if change.Owner.Kind == OwnerAddress {
			op.To = change.Owner.Address
		}

	case ChangeTransferred:
		from := change.Sender
		if from == "" {
			from = sender
		}
		var to string
		if change.Owner.Kind == OwnerAddress {
			to = change.Owner.Address
		}
		op.Kind = OpTransfer
		op.From = from
		op.To = to
		op.Description = fmt.Sprintf("Object transferred from %s to %s", shortAddr(from), shortAddr(to))

	case ChangeDeleted:
		op.Kind = OpDelete
		op.Description = describeDeletion(change.Owner, sender)

	case ChangePublished:
		op.Kind = OpPublish
		op.Description = "New smart contract published"
		if sender != "" {
			op.Description += " by " + shortAddr(sender)
		}

	default:
		op.Kind = OpMutate
		op.Description = "An object was modified"
	}

	return op
}

// describeDeletion mentions the prior owner when the record carries one.
// Shared objects are attributed to the transaction sender.
func describeDeletion(owner Owner, sender string) string {
	switch owner.Kind {
	case OwnerAddress:
		return "Object deleted from " + shortAddr(owner.Address)
	case OwnerShared:
		if sender != "" {
			return "Object deleted from " + shortAddr(sender)
		}
	}
	return "Object deleted"
}
