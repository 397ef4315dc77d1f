package narrator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/otterhq/suilens/internal/decoder"
)

// buildPrompt assembles the completion prompt from the decoded transaction
// and the viewer context. The layout keeps each fact on its own line so the
// model can pick out amounts and call targets without parsing prose.
func (n *Narrator) buildPrompt(details decoder.TransactionDetails, mctx Context) string {
	var b strings.Builder

	b.WriteString("Explain this Sui blockchain transaction in 1-2 simple, friendly sentences. Use clear, non-technical language.\n\n")

	viewerInvolved := mctx.ViewerIsSubject ||
		(mctx.ViewerAddress != "" && slices.Contains(details.Participants, mctx.ViewerAddress))

	group := mctx.GroupLabel
	if group == "" {
		group = "the chat"
	}

	if viewerInvolved {
		b.WriteString(`IMPORTANT: This is the current user's transaction. Use "you" and "your" when referring to the wallet/account.` + "\n\n")
		fmt.Fprintf(&b, "This is YOUR transaction that you shared in %s. ", group)
	} else if mctx.SubjectName != "" {
		fmt.Fprintf(&b, "IMPORTANT: This is %s's transaction. Use %q or \"they/their\" when referring to the wallet/account.\n\n", mctx.SubjectName, mctx.SubjectName)
		fmt.Fprintf(&b, "%s shared this transaction in %s. ", mctx.SubjectName, group)
	}

	b.WriteString("Transaction Details:\n")
	fmt.Fprintf(&b, "- Hash: %s\n", details.Digest)
	fmt.Fprintf(&b, "- Gas Used: %s SUI\n", details.GasUsed)
	fmt.Fprintf(&b, "- Participants: %d addresses\n", len(details.Participants))

	if len(details.Operations) > 0 {
		b.WriteString("\nOperations:\n")
		for _, op := range details.Operations {
			fmt.Fprintf(&b, "- %s: %s", op.Kind, op.Description)
			if op.Amount != "" {
				asset := op.Asset
				if asset == "" {
					asset = "tokens"
				}
				fmt.Fprintf(&b, " (%s %s)", op.Amount, asset)
			}
			b.WriteByte('\n')
		}
	}

	if len(details.MoveCalls) > 0 {
		b.WriteString("\nSmart Contract Calls:\n")
		for _, call := range details.MoveCalls {
			fmt.Fprintf(&b, "- %s::%s::%s\n", call.Package, call.Module, call.Function)
		}
	}

	if details.ProtocolName != "" {
		fmt.Fprintf(&b, "\nProtocol: %s\n", details.ProtocolName)
	}
	if details.ValidatorName != "" {
		fmt.Fprintf(&b, "\nValidator: %s\n", details.ValidatorName)
	}
	if details.ExchangeName != "" {
		fmt.Fprintf(&b, "\nExchange: %s\n", details.ExchangeName)
	}

	b.WriteString("\nKeep it brief and easy to understand.")

	return b.String()
}
