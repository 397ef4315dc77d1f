package narrator

import (
	"fmt"
	"strings"

	"github.com/otterhq/suilens/internal/decoder"
)

// maxFallbackOperations caps the operation lines in the templated
// explanation; the remainder collapses into a single count line.
const maxFallbackOperations = 5

// fallback renders the deterministic templated explanation. It involves no
// network activity and always succeeds, so it is the floor every narration
// path can drop to.
func (n *Narrator) fallback(details decoder.TransactionDetails, mctx Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Transaction by %s:\n\n", mctx.subject(details.Participants))

	if len(details.MoveCalls) > 0 {
		b.WriteString("**Smart Contract Calls:**\n")
		sender := ""
		if len(details.Participants) > 0 {
			sender = details.Participants[0]
		}
		for _, call := range details.MoveCalls {
			fmt.Fprintf(&b, "- %s\n", n.describer.DescribeMoveCall(call, sender))
		}
		b.WriteByte('\n')
	}

	if len(details.Operations) > 0 {
		b.WriteString("**Operations:**\n")
		shown := details.Operations
		if len(shown) > maxFallbackOperations {
			shown = shown[:maxFallbackOperations]
		}
		for _, op := range shown {
			fmt.Fprintf(&b, "- %s\n", op.Description)
		}
		if extra := len(details.Operations) - maxFallbackOperations; extra > 0 {
			fmt.Fprintf(&b, "- ... and %d more operations\n", extra)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
