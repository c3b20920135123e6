package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mlefebvre/contraudit/internal/audit"
	"github.com/mlefebvre/contraudit/internal/config"
	"github.com/mlefebvre/contraudit/internal/llm"
	"github.com/mlefebvre/contraudit/internal/parse"
	"github.com/mlefebvre/contraudit/internal/report"
	"github.com/mlefebvre/contraudit/internal/schema"
	"github.com/mlefebvre/contraudit/internal/store"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// auditFlags holds the parsed flags for the audit command.
type auditFlags struct {
	configPath string
	model      string
	format     string
	out        string
	dbPath     string
	timeout    int
	maxTokens  int
	stream     bool
	verbose    bool
}

func main() {
	root := &cobra.Command{
		Use:   "contraudit",
		Short: "Audit ICT outsourcing contracts against the DORA/EBA/ACPR checklist",
		Long: "Contraudit audits ICT outsourcing contracts against a fixed checklist of 35 regulatory\n" +
			"requirements (DORA, EBA/GL/2019/02, arrêté du 3 novembre 2014) and produces a scored\n" +
			"findings report.",
	}

	var flags auditFlags
	auditCmd := &cobra.Command{
		Use:   "audit <contract-file>...",
		Short: "Analyze one or more contract documents as a single logical contract",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(args, flags)
		},
	}

	f := auditCmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Path to YAML config file")
	f.StringVar(&flags.model, "model", "", "Completion backend as provider:model (overrides config)")
	f.StringVar(&flags.format, "format", "json", "Output format: json or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.dbPath, "db", "", "Persist the report to this SQLite database")
	f.IntVar(&flags.timeout, "timeout", 0, "Per-call timeout in seconds (overrides config)")
	f.IntVar(&flags.maxTokens, "max-tokens", 0, "Maximum response tokens (overrides config)")
	f.BoolVar(&flags.stream, "stream", false, "Use incremental streaming instead of one blocking call")
	f.BoolVar(&flags.verbose, "verbose", false, "Print progress and debug logs to stderr")

	var listDB string
	var listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(listDB, listLimit)
		},
	}
	listCmd.Flags().StringVar(&listDB, "db", "", "SQLite database path")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum analyses to list")

	var showDB string
	showCmd := &cobra.Command{
		Use:   "show <analysis-id>",
		Short: "Print a persisted report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(showDB, args[0])
		},
	}
	showCmd.Flags().StringVar(&showDB, "db", "", "SQLite database path")

	root.AddCommand(auditCmd, listCmd, showCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runAudit(paths []string, flags auditFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return codeError(3, "loading config: %s", err)
	}

	if flags.format != "json" && flags.format != "md" {
		return codeError(2, "--format must be json or md, got %q", flags.format)
	}

	content, err := loadContract(paths)
	if err != nil {
		return codeError(2, "loading contract: %s", err)
	}

	logger := newLogger(flags.verbose)
	defer logger.Sync()

	provider, err := llm.NewProvider(cfg.Model, llm.Options{
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout(),
	})
	if err != nil {
		return codeError(3, "creating provider: %s", err)
	}

	analyzer := audit.New(provider, audit.Options{
		ModelLabel:      cfg.Model,
		Version:         version,
		MaxTokens:       cfg.MaxTokens,
		Stream:          flags.stream,
		MinContentBytes: cfg.MinContentBytes,
		MaxContentBytes: cfg.MaxContentBytes,
	}, logger)

	onEvent := func(e audit.Event) {
		if !flags.verbose {
			return
		}
		switch e.Stage {
		case audit.StageStreaming:
			fmt.Fprintf(os.Stderr, "INFO: streaming (%d fragments)\n", e.Fragments)
		case audit.StageFailed:
			// The error itself is reported through the return path.
		default:
			msg := string(e.Stage)
			if e.Message != "" {
				msg += ": " + e.Message
			}
			fmt.Fprintf(os.Stderr, "INFO: %s\n", msg)
		}
	}

	rep, err := analyzer.AnalyzeWithProgress(context.Background(), content, onEvent)
	if err != nil {
		switch {
		case errors.Is(err, audit.ErrContentTooShort), errors.Is(err, audit.ErrContentTooLong):
			return codeError(2, "%s", err)
		case errors.Is(err, parse.ErrUnparseable):
			return codeError(4, "%s", err)
		default:
			return codeError(3, "%s", err)
		}
	}

	renderer, err := report.NewRenderer(flags.format)
	if err != nil {
		return codeError(2, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(rep)
	if err != nil {
		return codeError(1, "rendering output: %s", err)
	}

	if flags.out != "" {
		if err := os.WriteFile(flags.out, outputBytes, 0o644); err != nil {
			return codeError(1, "writing output file: %s", err)
		}
	} else {
		if _, err := os.Stdout.Write(outputBytes); err != nil {
			return codeError(1, "writing output: %s", err)
		}
		// Ensure output ends with a newline for terminal friendliness.
		if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
			fmt.Fprintln(os.Stdout)
		}
	}

	dbPath := flags.dbPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath != "" {
		id, err := persist(dbPath, rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARN: persisting report failed: %s\n", err)
		} else if flags.verbose {
			fmt.Fprintf(os.Stderr, "INFO: saved analysis %s\n", id)
		}
	}

	return nil
}

func loadConfig(flags auditFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.timeout > 0 {
		cfg.TimeoutSeconds = flags.timeout
	}
	if flags.maxTokens > 0 {
		cfg.MaxTokens = flags.maxTokens
	}
	return cfg, nil
}

// loadContract reads every file and concatenates them into one logical
// contract, separated by blank lines.
func loadContract(paths []string) (string, error) {
	var parts []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", p, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n\n"), nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func persist(dbPath string, rep *schema.Report) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer st.Close()
	return st.Save(rep)
}

func runList(dbPath string, limit int) error {
	if dbPath == "" {
		return codeError(2, "--db is required")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return codeError(3, "opening database: %s", err)
	}
	defer st.Close()

	rows, err := st.ListAnalyses(limit)
	if err != nil {
		return codeError(1, "listing analyses: %s", err)
	}
	if len(rows) == 0 {
		fmt.Println("No analyses found.")
		return nil
	}
	for _, r := range rows {
		flag := ""
		if r.Partial {
			flag = " (partial)"
		}
		fmt.Printf("%s  %s  %-32s  score %d%s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Model, r.Score, flag)
	}
	return nil
}

func runShow(dbPath, id string) error {
	if dbPath == "" {
		return codeError(2, "--db is required")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return codeError(3, "opening database: %s", err)
	}
	defer st.Close()

	rep, err := st.GetAnalysis(id)
	if err != nil {
		return codeError(1, "%s", err)
	}
	renderer, _ := report.NewRenderer("json")
	out, err := renderer.Render(rep)
	if err != nil {
		return codeError(1, "rendering report: %s", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return codeError(1, "writing output: %s", err)
	}
	fmt.Println()
	return nil
}
