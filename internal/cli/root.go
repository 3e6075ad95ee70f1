package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/rpgo/investment-calculator/internal/metrics"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global flags that are not settings.
type RootOptions struct {
	EnvFile string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Settings *config.Settings
	Logger   *zap.SugaredLogger
	Metrics  *metrics.Collector
	Engine   *calculation.CalculationEngine
	Parser   *config.InputParser

	base *zap.Logger
}

// settingFlags maps settings keys to their persistent flag names.
var settingFlags = map[string]string{
	"log_level":    "log-level",
	"log_format":   "log-format",
	"output_dir":   "output-dir",
	"format":       "format",
	"metrics_file": "metrics-file",
	"start_year":   "start-year",
}

// NewRootCommand creates the root command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Investment calculator: compound growth, debt vs invest and economic scenarios",
		Long: "calc projects compound growth with monthly contributions, compares paying down a loan\n" +
			"against investing the same extra cash, and simulates a recession and income growth.\n" +
			"Reports are written in console, CSV, JSON, HTML or PDF form.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, v, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPostRun(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log encoding (console, json)")
	pf.StringP("output-dir", "o", ".", "directory report files are written to")
	pf.StringP("format", "f", "console", "report format, an alias, or \"all\" (see `calc formats`)")
	pf.String("metrics-file", "", "write Prometheus metrics to this file after the run")
	pf.Int("start-year", 0, "calendar year of year 0 (default: current year)")
	pf.StringVar(&opts.EnvFile, "env-file", "", "load environment variables from this file (default: ./.env if present)")

	for key, flag := range settingFlags {
		// Lookup cannot fail: every flag was registered above.
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(
		newGrowthCmd(),
		newDebtCmd(),
		newScenarioCmd(),
		newRunCmd(),
		newExampleCmd(),
		newFormatsCmd(),
	)
	return cmd
}

// persistentPreRun resolves settings, builds the logger, metrics and engine, then stores CLIContext.
func persistentPreRun(cmd *cobra.Command, v *viper.Viper, opts *RootOptions) error {
	settings, err := config.LoadSettings(v, opts.EnvFile)
	if err != nil {
		return fmt.Errorf("settings initialization failed: %w", err)
	}

	base, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logger := logging.NewZapAdapter(base)

	collector := metrics.New()
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.SetRecorder(collector)

	cliCtx := &CLIContext{
		Settings: settings,
		Logger:   logger,
		Metrics:  collector,
		Engine:   engine,
		Parser:   config.NewInputParser(),
		base:     base,
	}
	logger.Debugw("settings resolved",
		"format", settings.Format,
		"output_dir", settings.OutputDir,
		"start_year", settings.StartYear,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, cliCtx))
	return nil
}

// persistentPostRun flushes the metrics file and the logger.
func persistentPostRun(cmd *cobra.Command) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	if path := cliCtx.Settings.MetricsFile; path != "" {
		if err := cliCtx.Metrics.WriteToTextfile(path); err != nil {
			return err
		}
		cliCtx.Logger.Debugw("metrics written", "path", path)
	}
	// Sync on stderr returns EINVAL/ENOTTY on some platforms; nothing to report.
	_ = cliCtx.base.Sync()
	return nil
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New("CLIContext not found in command context")
	}
	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	return ExecuteArgs(nil)
}

// ExecuteArgs runs the root command with explicit arguments; nil uses os.Args.
func ExecuteArgs(args []string) error {
	rootCmd := NewRootCommand()
	if args != nil {
		rootCmd.SetArgs(args)
	}
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

// PrintSuccess writes a formatted success message to stdout.
func PrintSuccess(cmd *cobra.Command, msg string) {
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", msg)
}

// FormatTable renders headers and rows as an aligned ASCII table.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i := range headers {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			sb.WriteString(padRight(val, colWidths[i]))
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sep := make([]string, len(colWidths))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
