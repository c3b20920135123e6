// Package audit orchestrates one analysis run: content gate, prompt
// construction, the single completion call (blocking or streamed), parse,
// rule validation, and report transformation. One run owns all of its
// intermediate state; nothing is shared across concurrent runs except the
// read-only catalog.
package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/llm"
	"github.com/mlefebvre/contraudit/internal/parse"
	"github.com/mlefebvre/contraudit/internal/prompt"
	"github.com/mlefebvre/contraudit/internal/redact"
	"github.com/mlefebvre/contraudit/internal/report"
	"github.com/mlefebvre/contraudit/internal/rules"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// Content length gate defaults, in bytes. Shorter documents carry too
// little contractual language to audit; longer ones blow the prompt size.
const (
	DefaultMinContentBytes = 400
	DefaultMaxContentBytes = 600_000
)

// Sentinel errors for the input validation gate. Both are always fatal to
// the current request and never retried internally.
var (
	ErrContentTooShort = errors.New("contract content too short to analyze")
	ErrContentTooLong  = errors.New("contract content exceeds the maximum supported size")
)

// Stage identifies a lifecycle point of one analysis run.
type Stage string

const (
	StageStarted     Stage = "started"
	StagePromptBuilt Stage = "prompt_built"
	StageStreaming   Stage = "streaming"
	StageModelDone   Stage = "model_done"
	StageParsed      Stage = "parsed"
	StageScored      Stage = "scored"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Event is a progress marker emitted by AnalyzeWithProgress. Events carry
// no information that is not already implied by the final Report; they
// exist purely as a UI side channel.
type Event struct {
	Stage   Stage
	Message string
	// Fragments counts stream fragments received so far; only set during
	// StageStreaming events.
	Fragments int
}

// Options configures an Analyzer.
type Options struct {
	// ModelLabel is the "provider:model" string used for report metadata
	// when the provider does not echo the model back (streaming mode).
	ModelLabel string
	// Version is stamped into the report.
	Version string
	// MaxTokens bounds the model output length; zero uses the gateway default.
	MaxTokens int
	// Stream selects incremental decoding over one blocking call.
	Stream bool
	// MinContentBytes / MaxContentBytes override the content gate; zero
	// values use the defaults.
	MinContentBytes int
	MaxContentBytes int
}

// Analyzer runs contract analyses against one configured provider.
type Analyzer struct {
	provider llm.Provider
	opts     Options
	log      *zap.Logger
}

// New constructs an Analyzer. A nil logger disables logging.
func New(provider llm.Provider, opts Options, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MinContentBytes <= 0 {
		opts.MinContentBytes = DefaultMinContentBytes
	}
	if opts.MaxContentBytes <= 0 {
		opts.MaxContentBytes = DefaultMaxContentBytes
	}
	return &Analyzer{provider: provider, opts: opts, log: log}
}

// Analyze audits contract content and returns the finished report.
func (a *Analyzer) Analyze(ctx context.Context, content string) (*schema.Report, error) {
	return a.AnalyzeWithProgress(ctx, content, nil)
}

// AnalyzeWithProgress audits contract content, emitting ordered lifecycle
// events to onEvent (which may be nil). The caller receives either a
// complete Report, possibly flagged partial, or a single descriptive error.
func (a *Analyzer) AnalyzeWithProgress(ctx context.Context, content string, onEvent func(Event)) (*schema.Report, error) {
	emit := func(e Event) {
		if onEvent != nil {
			onEvent(e)
		}
	}
	fail := func(err error) (*schema.Report, error) {
		emit(Event{Stage: StageFailed, Message: err.Error()})
		return nil, err
	}

	emit(Event{Stage: StageStarted})

	if err := a.validateContent(content); err != nil {
		return fail(err)
	}

	content = redact.Redact(content)

	req := &llm.Request{
		SystemPrompt: prompt.BuildSystem(),
		UserPrompt:   prompt.BuildUser(content, catalog.All()),
		MaxTokens:    a.opts.MaxTokens,
	}
	emit(Event{Stage: StagePromptBuilt})
	a.log.Debug("prompt built",
		zap.Int("system_len", len(req.SystemPrompt)),
		zap.Int("user_len", len(req.UserPrompt)),
		zap.Int("requirements", catalog.Count()))

	raw, model, err := a.complete(ctx, req, emit)
	if err != nil {
		return fail(fmt.Errorf("completion call failed: %w", err))
	}
	emit(Event{Stage: StageModelDone})
	a.log.Info("model response received", zap.String("model", model), zap.Int("bytes", len(raw)))

	analysis, err := parse.Analysis(raw)
	if err != nil {
		return fail(err)
	}
	emit(Event{Stage: StageParsed, Message: fmt.Sprintf("%d items", len(analysis.Items))})
	if analysis.Partial {
		a.log.Warn("partial recovery", zap.Int("recovered_items", analysis.RecoveredCount))
	}

	validated := rules.Validate(analysis)
	emit(Event{Stage: StageScored, Message: fmt.Sprintf("score %d", validated.Score)})
	if validated.Score != analysis.Score {
		a.log.Info("score corrected",
			zap.Int("asserted", analysis.Score),
			zap.Int("reported", validated.Score))
	}

	rep := report.Transform(validated, model, a.opts.Version)
	emit(Event{Stage: StageDone})
	return rep, nil
}

func (a *Analyzer) validateContent(content string) error {
	switch {
	case len(content) < a.opts.MinContentBytes:
		return fmt.Errorf("%w: %d bytes (minimum %d)", ErrContentTooShort, len(content), a.opts.MinContentBytes)
	case len(content) > a.opts.MaxContentBytes:
		return fmt.Errorf("%w: %d bytes (maximum %d)", ErrContentTooLong, len(content), a.opts.MaxContentBytes)
	}
	return nil
}

// complete performs the single outbound call, either blocking or by
// assembling stream fragments. It returns the raw text and a model label
// for report metadata.
func (a *Analyzer) complete(ctx context.Context, req *llm.Request, emit func(Event)) (string, string, error) {
	if !a.opts.Stream {
		resp, err := a.provider.Complete(ctx, req)
		if err != nil {
			return "", "", err
		}
		return resp.Content, resp.Model, nil
	}

	deltas, errs := a.provider.Stream(ctx, req)
	var sb strings.Builder
	fragments := 0
	for delta := range deltas {
		sb.WriteString(delta)
		fragments++
		if fragments%25 == 0 {
			emit(Event{Stage: StageStreaming, Fragments: fragments})
		}
	}
	if err := <-errs; err != nil {
		return "", "", err
	}
	a.log.Debug("stream complete", zap.Int("fragments", fragments))
	return sb.String(), a.opts.ModelLabel, nil
}
