// Package registry maps known on-chain identifiers to human-readable names.
//
// It holds static, process-lifetime tables of protocol package addresses,
// coin type tags, validator addresses and exchange addresses, and exposes
// pure lookup functions over them. Addresses are assumed pre-normalized
// lowercase hex with a "0x" prefix; lookups are exact, with no partial
// matching or case folding.
package registry

import "strings"

// UnknownProtocol is the sentinel returned by ProtocolName when a package
// address is not present in the protocol table.
const UnknownProtocol = "Unknown Protocol"

// ProtocolKind classifies what a known protocol package does.
type ProtocolKind string

const (
	KindDEX            ProtocolKind = "dex"
	KindLending        ProtocolKind = "lending"
	KindNFT            ProtocolKind = "nft"
	KindBridge         ProtocolKind = "bridge"
	KindOracle         ProtocolKind = "oracle"
	KindInfrastructure ProtocolKind = "infrastructure"
	KindOther          ProtocolKind = "other"
)

// ProtocolInfo describes a known on-chain protocol package.
type ProtocolInfo struct {
	Name        string
	Kind        ProtocolKind
	Category    string
	Description string
}

// AddressInfo describes a known standalone address, such as a validator
// operator or an exchange hot wallet.
type AddressInfo struct {
	Name        string
	Description string
}

// Registry resolves opaque on-chain identifiers to display names. All lookup
// methods are safe for concurrent use: the tables are never mutated after
// construction.
type Registry struct {
	protocols  map[string]ProtocolInfo
	tokens     map[string]string
	validators map[string]AddressInfo
	exchanges  map[string]AddressInfo
}

// Option customizes a Registry during construction.
type Option func(*Registry)

// WithProtocols merges additional protocol entries into the built-in table.
// Entries for an already-known package address override the built-in ones.
func WithProtocols(entries map[string]ProtocolInfo) Option {
	return func(r *Registry) {
		for addr, info := range entries {
			r.protocols[addr] = info
		}
	}
}

// WithTokens merges additional coin type tag to symbol mappings.
func WithTokens(entries map[string]string) Option {
	return func(r *Registry) {
		for tag, symbol := range entries {
			r.tokens[tag] = symbol
		}
	}
}

// WithValidators merges additional validator address entries.
func WithValidators(entries map[string]AddressInfo) Option {
	return func(r *Registry) {
		for addr, info := range entries {
			r.validators[addr] = info
		}
	}
}

// WithExchanges merges additional exchange address entries.
func WithExchanges(entries map[string]AddressInfo) Option {
	return func(r *Registry) {
		for addr, info := range entries {
			r.exchanges[addr] = info
		}
	}
}

// New builds a Registry seeded with the built-in tables, then applies the
// given options.
func New(opts ...Option) *Registry {
	r := &Registry{
		protocols:  make(map[string]ProtocolInfo, len(knownProtocols)),
		tokens:     make(map[string]string, len(knownTokens)),
		validators: make(map[string]AddressInfo, len(knownValidators)),
		exchanges:  make(map[string]AddressInfo, len(knownExchanges)),
	}

	for addr, info := range knownProtocols {
		r.protocols[addr] = info
	}
	for tag, symbol := range knownTokens {
		r.tokens[tag] = symbol
	}
	for addr, info := range knownValidators {
		r.validators[addr] = info
	}
	for addr, info := range knownExchanges {
		r.exchanges[addr] = info
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ProtocolName resolves a package address to a protocol display name.
// It returns UnknownProtocol when the address is not in the table.
func (r *Registry) ProtocolName(packageID string) string {
	if info, ok := r.protocols[packageID]; ok {
		return info.Name
	}
	return UnknownProtocol
}

// ProtocolInfo returns the full entry for a known package address.
func (r *Registry) ProtocolInfo(packageID string) (ProtocolInfo, bool) {
	info, ok := r.protocols[packageID]
	return info, ok
}

// ValidatorName resolves an address to a known validator operator name.
func (r *Registry) ValidatorName(address string) (string, bool) {
	if info, ok := r.validators[address]; ok {
		return info.Name, true
	}
	return "", false
}

// ExchangeName resolves an address to a known exchange wallet name.
func (r *Registry) ExchangeName(address string) (string, bool) {
	if info, ok := r.exchanges[address]; ok {
		return info.Name, true
	}
	return "", false
}

// AddressLabel resolves an address to a human-readable label, checking
// validators first and exchanges second.
func (r *Registry) AddressLabel(address string) (string, bool) {
	if name, ok := r.ValidatorName(address); ok {
		return name, true
	}
	return r.ExchangeName(address)
}

// wellKnownSymbols are coin symbols accepted verbatim when they appear as the
// last segment of a type tag.
var wellKnownSymbols = map[string]struct{}{
	"SUI":  {},
	"USDC": {},
	"USDT": {},
	"WETH": {},
}

// suiFrameworkPackage is the package address of the core Sui framework.
const suiFrameworkPackage = "0x2"

// TokenSymbol derives a display symbol for a coin type tag such as
// "0x2::sui::SUI".
//
// Resolution order: the static token table, then a well-known symbol as the
// last tag segment, then a shortened package address for generic "COIN"
// wrappers outside the Sui framework, then the last segment verbatim. An
// empty tag yields "Unknown"; a tag with an empty last segment yields
// "Token". This is a total function: it never fails on malformed input.
func (r *Registry) TokenSymbol(typeTag string) string {
	if typeTag == "" {
		return "Unknown"
	}

	if symbol, ok := r.tokens[typeTag]; ok {
		return symbol
	}

	parts := strings.Split(typeTag, "::")
	last := parts[len(parts)-1]

	if _, ok := wellKnownSymbols[last]; ok {
		return last
	}

	if last == "COIN" {
		packageID := parts[0]
		if packageID != "" && packageID != suiFrameworkPackage {
			return FormatAddress(packageID)
		}
		return "Token"
	}

	if last == "" {
		return "Token"
	}
	return last
}

// FormatAddress shortens an address to "first6...last4" for display.
// Inputs too short to shorten are returned unchanged.
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
