package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/internal/config"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/parser"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// session is what every subcommand needs after config is loaded.
type session struct {
	cfg      *config.Config
	path     string
	opts     sheetpeek.Options
	renderer *output.Renderer
	logger   *slog.Logger
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sheetpeek",
		Short: "Inspect the layout of a spreadsheet file",
		Long: `sheetpeek prints the detected column headers, a preview of raw rows,
or an arbitrary row window of one sheet, as pipe-delimited text.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Name(), cmd.Flags())
			if err != nil {
				return err
			}

			l := logger
			if l == nil {
				l = config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			}
			if cfg.Source != "" {
				l.Debug("loaded config", "file", cfg.Source)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			cmd.SetContext(config.WithLogger(ctx, l))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sheetpeek.yaml)")
	rootCmd.PersistentFlags().String("sheet", "", "Sheet to read (default: the active sheet)")
	rootCmd.PersistentFlags().String("engine", "", "xlsx reader: excelize or stream")
	rootCmd.PersistentFlags().StringP("format", "o", "", "Output format: text, table, json, toon")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "table", "json", "toon"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("engine", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"excelize", "stream"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newHeadersCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newWindowCommand())
	rootCmd.AddCommand(newSheetsCommand())

	return rootCmd
}

// newSession resolves the input path, reader options and renderer for cmd.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}

	engine, err := parser.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	path := cfg.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no input file: pass one or set file in %s", config.ConfigFileName)
	}

	return &session{
		cfg:  cfg,
		path: path,
		opts: sheetpeek.Options{
			Sheet:     cfg.Sheet,
			HeaderRow: cfg.HeaderRow,
			Engine:    engine,
		},
		renderer: output.NewRenderer(cmd.OutOrStdout(), format, cfg.Pretty),
		logger:   config.GetLogger(cmd.Context()),
	}, nil
}
