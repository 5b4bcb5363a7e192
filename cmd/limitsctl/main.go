package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jobcast/internal/app"
	"jobcast/internal/config"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	cfg    config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "limitsctl",
	Short: "Operate the campaign limits engine",
	Long: `limitsctl runs limit checks and manual remediation against the
campaign store, using the same environment configuration as the server.

Results are printed as JSON on stdout; logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger = cfg.Log.New(os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout")

	pauseCmd.Flags().StringVar(&pauseReason, "reason", "manual", "Reason recorded with the pause")
	enforceCPCCmd.Flags().StringVar(&enforceReason, "reason", "manual", "Reason recorded with the bid change")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 50, "Maximum number of records")
	migrateCmd.Flags().UintVar(&migrateTo, "to", 0, "Target schema version (default: latest)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(checkAllCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(enforceCPCCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withEngine builds the engine for the duration of fn. The context is
// cancelled on SIGINT, SIGTERM or after --timeout.
func withEngine(fn func(ctx context.Context, engine *app.App) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	engine, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	runErr := fn(ctx, engine)
	if err := engine.Close(); err != nil {
		logger.Warn("shutdown", slog.Any("error", err))
	}
	return runErr
}

func campaignArg(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid campaign id %q", args[0])
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
