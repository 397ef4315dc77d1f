package decoder

import (
	"fmt"
	"strings"

	"github.com/otterhq/suilens/internal/registry"
)

// ExtractMoveCalls returns the Move calls from the transaction's command
// list, in command order. Commands of other shapes are skipped. Calls without
// arguments get an empty argument list, never nil.
func ExtractMoveCalls(tx RawTransaction) []MoveCall {
	calls := make([]MoveCall, 0, len(tx.Commands))
	for _, cmd := range tx.Commands {
		if cmd.MoveCall == nil {
			continue
		}
		call := *cmd.MoveCall
		if call.Arguments == nil {
			call.Arguments = []string{}
		}
		calls = append(calls, call)
	}
	return calls
}

// callVerb pairs a function-name fragment with description templates. The
// known template takes the resolved protocol name; the anon template takes
// the shortened sender address.
type callVerb struct {
	fragment string
	known    string
	anon     string
}

// callVerbs is evaluated in priority order; the first fragment contained in
// the lower-cased function name wins.
var callVerbs = []callVerb{
	{"swap", "Called swap on %s", "%s executed token swap"},
	{"deposit", "Deposited to %s", "%s executed deposit"},
	{"withdraw", "Withdrew from %s", "%s executed withdrawal"},
	{"transfer", "Transferred via %s", "%s executed transfer"},
	{"mint", "Minted via %s", "%s executed mint"},
	{"burn", "Burned via %s", "%s executed burn"},
}

// DescribeMoveCall produces a one-line natural-language description of a Move
// call, classifying the function name by substring and naming the protocol
// when the call's package is known.
func (d *Decoder) DescribeMoveCall(call MoveCall, sender string) string {
	protocol := d.reg.ProtocolName(call.Package)
	known := protocol != registry.UnknownProtocol
	fn := strings.ToLower(call.Function)

	for _, verb := range callVerbs {
		if strings.Contains(fn, verb.fragment) {
			if known {
				return fmt.Sprintf(verb.known, protocol)
			}
			return fmt.Sprintf(verb.anon, shortAddr(sender))
		}
	}

	clean := strings.ToLower(strings.ReplaceAll(call.Function, "_", " "))
	if known {
		return fmt.Sprintf("Called %s on %s", clean, protocol)
	}
	return fmt.Sprintf("%s executed %s", shortAddr(sender), clean)
}
