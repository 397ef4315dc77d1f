// Package narrator turns decoded transaction details into natural-language
// explanations.
//
// When an LLM completion client is configured, narration goes through it,
// throttled to a minimum interval between requests. Without a client, when
// the throttle window has not elapsed, or when the request fails for any
// reason, narration falls back to a deterministic templated explanation; a
// narration problem is never surfaced to the caller.
package narrator

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/pkg/logger"
)

// defaultMinInterval is the minimum spacing between LLM requests. Calls
// arriving inside the window drop to the deterministic fallback instead of
// queueing.
const defaultMinInterval = 6 * time.Second

// Completer issues one text-completion request against an LLM provider.
type Completer interface {
	// Complete returns the completion text for the given prompt. It fails
	// with an error on network, auth or quota problems; callers decide how
	// to degrade.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Context carries message-level information about who is viewing the
// explanation, used for pronoun selection in both the prompt and the
// fallback text.
type Context struct {
	// SubjectName is the display name of the account that shared or sent
	// the transaction.
	SubjectName string
	// ViewerIsSubject marks the transaction as the viewer's own.
	ViewerIsSubject bool
	// ViewerAddress, when set, is matched against the transaction's
	// participants to detect the viewer's involvement.
	ViewerAddress string
	// GroupLabel names the chat or channel the transaction was shared in.
	GroupLabel string
}

// subject resolves the display subject for the given participants: "You"
// when the viewer is involved, the subject's name otherwise, "User" when
// nothing is known.
func (c Context) subject(participants []string) string {
	if c.ViewerIsSubject || (c.ViewerAddress != "" && slices.Contains(participants, c.ViewerAddress)) {
		return "You"
	}
	if c.SubjectName != "" {
		return c.SubjectName
	}
	return "User"
}

// Describer renders a one-line description of a Move call. It is satisfied
// by *decoder.Decoder.
type Describer interface {
	DescribeMoveCall(call decoder.MoveCall, sender string) string
}

// Narrator produces explanations for decoded transactions. The only mutable
// state is the timestamp of the last LLM request, guarded by a mutex so
// concurrent calls cannot double-fire inside the throttle window.
type Narrator struct {
	describer   Describer
	completer   Completer // nil means no credential configured
	minInterval time.Duration
	now         func() time.Time

	mu       sync.Mutex
	lastCall time.Time
}

// Option customizes a Narrator during construction.
type Option func(*Narrator)

// WithCompleter configures the LLM completion client. Without it the
// narrator always produces the deterministic fallback.
func WithCompleter(c Completer) Option {
	return func(n *Narrator) {
		n.completer = c
	}
}

// WithMinInterval overrides the minimum spacing between LLM requests.
// Default: 6 seconds.
func WithMinInterval(d time.Duration) Option {
	return func(n *Narrator) {
		n.minInterval = d
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Narrator) {
		n.now = now
	}
}

// New constructs a Narrator that renders Move-call lines through the given
// describer.
func New(describer Describer, opts ...Option) *Narrator {
	n := &Narrator{
		describer:   describer,
		minInterval: defaultMinInterval,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// reserveSlot checks the throttle window and, when open, claims it by
// recording the current time. The claim happens under the same lock as the
// check so two concurrent calls cannot both see an open window.
func (n *Narrator) reserveSlot() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	if now.Sub(n.lastCall) < n.minInterval {
		return false
	}
	n.lastCall = now
	return true
}

// Narrate produces an explanation for the given transaction details.
//
// The decision is evaluated fresh on every call: no credential or a closed
// throttle window short-circuits to the deterministic fallback without any
// network activity, and a failed or empty completion also falls back. The
// returned string is never empty.
func (n *Narrator) Narrate(ctx context.Context, details decoder.TransactionDetails, mctx Context) string {
	if n.completer == nil {
		return n.fallback(details, mctx)
	}

	if !n.reserveSlot() {
		logger.Debug(ctx, "narration throttled, using fallback", "tx.digest", details.Digest)
		return n.fallback(details, mctx)
	}

	text, err := n.completer.Complete(ctx, n.buildPrompt(details, mctx))
	if err != nil {
		logger.Warn(ctx, "completion request failed, using fallback",
			"tx.digest", details.Digest,
			"error", err,
		)
		return n.fallback(details, mctx)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return n.fallback(details, mctx)
	}
	return text
}
