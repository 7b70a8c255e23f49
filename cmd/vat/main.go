package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kk-code-lab/vat/internal/app"
	"github.com/kk-code-lab/vat/internal/config"
	"github.com/kk-code-lab/vat/internal/engine"
)

var version = "dev"

type options struct {
	paging   string
	plain    bool
	debugLog string
	config   string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "vat [flags] <file>",
		Short: "Terminal file viewer with format-aware engines",
		Long: `vat views a file in the terminal, picking an engine for its format:
plain text, JSON Lines, logs with level filtering, or a hex dump for
binary content. Large files are memory-mapped, never loaded.`,
		Example: `  # View a file interactively
  vat server.log

  # Print numbered lines to a pipe
  vat notes.txt | grep -n TODO

  # Force non-interactive output
  vat --paging never events.jsonl`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.paging, "paging", "", "when to use the interactive viewer: auto, always or never")
	rootCmd.Flags().BoolVar(&opts.plain, "plain", false, "print numbered lines and exit")
	rootCmd.Flags().StringVar(&opts.debugLog, "debug-log", "", "write debug logs to this file")
	rootCmd.Flags().StringVar(&opts.config, "config", "", "config file path (default: ~/.config/vat/config.toml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vat:", err)
		os.Exit(1)
	}
}

func run(path string, opts options) error {
	cleanup, err := setupLogging(opts.debugLog)
	if err != nil {
		return err
	}
	defer cleanup()

	cfgPath := opts.config
	if cfgPath == "" {
		cfgPath = config.Path()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if opts.paging != "" {
		switch opts.paging {
		case "auto", "always", "never":
			cfg.Paging = opts.paging
		default:
			return fmt.Errorf("--paging must be auto, always or never, got %q", opts.paging)
		}
	}

	// Piped output gets the raw bytes, like cat, unless numbered lines
	// were asked for explicitly.
	if !opts.plain && !term.IsTerminal(int(os.Stdout.Fd())) {
		return app.WriteRaw(os.Stdout, path)
	}

	eng, err := engine.Open(path, cfg.TabWidth)
	if err != nil {
		return err
	}

	if opts.plain || !app.Interactive(cfg.Paging, eng) {
		defer eng.Close()
		return app.WritePlain(os.Stdout, eng, 0)
	}

	application, err := app.NewApplication(path, eng, cfg)
	if err != nil {
		_ = eng.Close()
		return err
	}
	return application.Run()
}

// setupLogging routes slog to the debug file, or discards everything when
// no file is given so log lines never corrupt the terminal UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("logging started", "version", version)
	return func() { _ = f.Close() }, nil
}
