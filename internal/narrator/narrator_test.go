package narrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/pkg/logger"
	"github.com/otterhq/suilens/internal/registry"
)

const cetusPackage = "0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb"

// completerFunc adapts a function to the Completer interface.
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func testDetails() decoder.TransactionDetails {
	return decoder.TransactionDetails{
		Digest:       "8dq8digest",
		GasUsed:      "0.002500",
		Participants: []string{"0xsender", "0xrecipient"},
		Operations: []decoder.Operation{
			{Kind: decoder.OpCreate, Description: "Minted SUI tokens"},
			{Kind: decoder.OpTransfer, Description: "0xABCD...1234 sent 1.500000 SUI", Amount: "1.500000", Asset: "SUI"},
		},
		MoveCalls: []decoder.MoveCall{
			{Package: cetusPackage, Module: "pool", Function: "swap", Arguments: []string{}},
			{Package: cetusPackage, Module: "pool", Function: "add_liquidity", Arguments: []string{}},
			{Package: cetusPackage, Module: "vault", Function: "deposit", Arguments: []string{}},
		},
		ProtocolName: "Cetus",
	}
}

func newTestNarrator(opts ...Option) *Narrator {
	return New(decoder.New(registry.New()), opts...)
}

func TestNarrator_Fallback(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should render every move call and operation without a completer", func(t *testing.T) {
		n := newTestNarrator()

		text := n.Narrate(context.Background(), testDetails(), Context{SubjectName: "alice"})

		assert.True(t, strings.HasPrefix(text, "Transaction by alice:"))
		assert.Contains(t, text, "**Smart Contract Calls:**")
		assert.Contains(t, text, "- Called swap on Cetus")
		assert.Contains(t, text, "- Called add liquidity on Cetus")
		assert.Contains(t, text, "- Deposited to Cetus")
		assert.Contains(t, text, "**Operations:**")
		assert.Contains(t, text, "- Minted SUI tokens")
		assert.Contains(t, text, "- 0xABCD...1234 sent 1.500000 SUI")
		assert.NotContains(t, text, "more operations")
	})

	t.Run("should truncate long operation lists", func(t *testing.T) {
		n := newTestNarrator()

		details := testDetails()
		details.Operations = nil
		for _, desc := range []string{"op one", "op two", "op three", "op four", "op five", "op six", "op seven"} {
			details.Operations = append(details.Operations, decoder.Operation{Kind: decoder.OpMutate, Description: desc})
		}

		text := n.Narrate(context.Background(), details, Context{})

		assert.Contains(t, text, "- op five")
		assert.NotContains(t, text, "- op six")
		assert.Contains(t, text, "- ... and 2 more operations")
	})

	t.Run("should use You when the viewer is the subject", func(t *testing.T) {
		n := newTestNarrator()

		text := n.Narrate(context.Background(), testDetails(), Context{ViewerIsSubject: true, SubjectName: "alice"})
		assert.True(t, strings.HasPrefix(text, "Transaction by You:"))
	})

	t.Run("should use You when the viewer address participates", func(t *testing.T) {
		n := newTestNarrator()

		text := n.Narrate(context.Background(), testDetails(), Context{ViewerAddress: "0xrecipient", SubjectName: "alice"})
		assert.True(t, strings.HasPrefix(text, "Transaction by You:"))
	})

	t.Run("should default the subject to User", func(t *testing.T) {
		n := newTestNarrator()

		text := n.Narrate(context.Background(), testDetails(), Context{})
		assert.True(t, strings.HasPrefix(text, "Transaction by User:"))
	})
}

func TestNarrator_Completion(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should return the trimmed completion text", func(t *testing.T) {
		n := newTestNarrator(WithCompleter(completerFunc(func(ctx context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "8dq8digest")
			assert.Contains(t, prompt, "Gas Used: 0.002500 SUI")
			return "  alice swapped tokens on Cetus.  \n", nil
		})))

		text := n.Narrate(context.Background(), testDetails(), Context{SubjectName: "alice"})
		assert.Equal(t, "alice swapped tokens on Cetus.", text)
	})

	t.Run("should fall back when the completion fails", func(t *testing.T) {
		n := newTestNarrator(WithCompleter(completerFunc(func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		})))

		text := n.Narrate(context.Background(), testDetails(), Context{SubjectName: "alice"})
		assert.True(t, strings.HasPrefix(text, "Transaction by alice:"))
	})

	t.Run("should fall back when the completion is empty", func(t *testing.T) {
		n := newTestNarrator(WithCompleter(completerFunc(func(ctx context.Context, prompt string) (string, error) {
			return "   ", nil
		})))

		text := n.Narrate(context.Background(), testDetails(), Context{SubjectName: "alice"})
		assert.True(t, strings.HasPrefix(text, "Transaction by alice:"))
	})
}

func TestNarrator_Throttling(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should drop to the fallback inside the minimum interval", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		calls := 0

		n := newTestNarrator(
			WithCompleter(completerFunc(func(ctx context.Context, prompt string) (string, error) {
				calls++
				return "llm text", nil
			})),
			WithClock(func() time.Time { return now }),
		)

		assert.Equal(t, "llm text", n.Narrate(context.Background(), testDetails(), Context{}))
		assert.Equal(t, 1, calls)

		now = now.Add(3 * time.Second)
		text := n.Narrate(context.Background(), testDetails(), Context{})
		assert.True(t, strings.HasPrefix(text, "Transaction by User:"))
		assert.Equal(t, 1, calls)

		now = now.Add(3 * time.Second)
		assert.Equal(t, "llm text", n.Narrate(context.Background(), testDetails(), Context{}))
		assert.Equal(t, 2, calls)
	})

	t.Run("should not extend the window on throttled calls", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		calls := 0

		n := newTestNarrator(
			WithCompleter(completerFunc(func(ctx context.Context, prompt string) (string, error) {
				calls++
				return "llm text", nil
			})),
			WithClock(func() time.Time { return now }),
		)

		n.Narrate(context.Background(), testDetails(), Context{})
		for i := 0; i < 5; i++ {
			now = now.Add(time.Second)
			n.Narrate(context.Background(), testDetails(), Context{})
		}
		assert.Equal(t, 1, calls)

		now = now.Add(time.Second)
		n.Narrate(context.Background(), testDetails(), Context{})
		assert.Equal(t, 2, calls)
	})
}
