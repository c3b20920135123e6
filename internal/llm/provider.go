// Package llm provides a uniform completion gateway over the supported
// model providers (Anthropic, OpenAI, Gemini). The rest of the pipeline
// depends only on the Provider interface, never on a provider's wire shapes.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// sharedHTTPClient is used by all providers; the 5-minute ceiling covers
// slow completions on large contracts. Per-request deadlines are tighter
// and applied via context.
var sharedHTTPClient = &http.Client{
	Timeout: 5 * time.Minute,
}

// defaultMaxTokens is the fallback when Request.MaxTokens is not set.
const defaultMaxTokens = 8192

// DefaultTimeout is the per-request deadline applied when the caller's
// context carries none. Large contracts routinely take over a minute.
const DefaultTimeout = 2 * time.Minute

// Request holds the parameters for one completion call. Decoding is always
// deterministic: every adapter pins temperature to 0.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	// Model overrides the provider's configured model when non-empty.
	Model string
}

// Response holds the result of a non-streaming completion call.
type Response struct {
	Content string
	Model   string // actual model used, echoed back for meta
}

// Provider is the interface for completion backends.
//
// Stream returns a channel of incremental text fragments and a channel
// carrying at most one error; both are closed when the stream ends.
// Cancelling ctx aborts the underlying request for both methods.
type Provider interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Stream(ctx context.Context, req *Request) (<-chan string, <-chan error)
}

// ProviderError is returned when the upstream service answers with a
// non-success status. It carries the upstream body so the caller can
// decide whether a retry makes sense; this layer never retries.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, truncate(e.Body, 300))
}

// Options configures provider construction.
type Options struct {
	// APIKey is the credential for the provider. When empty, the provider's
	// environment variable is consulted (ANTHROPIC_API_KEY, OPENAI_API_KEY,
	// GEMINI_API_KEY).
	APIKey string
	// Timeout is the per-request deadline applied when the caller's context
	// has none. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewProvider parses a "provider:model" string and returns the matching
// Provider. The credential is validated at construction time.
// Example: "anthropic:claude-sonnet-4-5" or "gemini:gemini-2.5-pro".
func NewProvider(providerModel string, opts Options) (Provider, error) {
	parts := strings.SplitN(providerModel, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid model format %q: expected provider:model (e.g. anthropic:claude-sonnet-4-5)", providerModel)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch parts[0] {
	case "anthropic":
		key, err := resolveKey(opts.APIKey, "ANTHROPIC_API_KEY")
		if err != nil {
			return nil, err
		}
		return &anthropicProvider{model: parts[1], apiKey: key, timeout: timeout}, nil
	case "openai":
		key, err := resolveKey(opts.APIKey, "OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		return &openaiProvider{model: parts[1], apiKey: key, timeout: timeout}, nil
	case "gemini":
		key, err := resolveKey(opts.APIKey, "GEMINI_API_KEY")
		if err != nil {
			return nil, err
		}
		return &geminiProvider{model: parts[1], apiKey: key, timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: supported providers are anthropic, openai, gemini", parts[0])
	}
}

func resolveKey(explicit, envVar string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("no API key: %s environment variable not set", envVar)
}

// applyTimeout attaches the provider's deadline when ctx carries none.
func applyTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, has := ctx.Deadline(); has {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
