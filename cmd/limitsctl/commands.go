package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jobcast/db/migrations"
	"jobcast/internal/app"
	"jobcast/internal/db"
)

var (
	pauseReason   string
	enforceReason string
	auditLimit    int
	migrateTo     uint
)

var checkCmd = &cobra.Command{
	Use:   "check <campaign-id>",
	Short: "Check one campaign's limits and apply the resulting actions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var checkAllCmd = &cobra.Command{
	Use:   "check-all",
	Short: "Check every active campaign once",
	Long: `check-all runs one batch over all active campaigns, the same run the
server scheduler performs on every tick. A failing campaign does not stop
the batch; failures are listed in the output.`,
	Args: cobra.NoArgs,
	RunE: runCheckAll,
}

var pauseCmd = &cobra.Command{
	Use:   "pause <campaign-id>",
	Short: "Pause a campaign on every active channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume <campaign-id>",
	Short: "Resume a paused campaign",
	Long: `resume reactivates a paused campaign and its paused channels. It is
refused while any limit would pause the campaign again.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

var enforceCPCCmd = &cobra.Command{
	Use:   "enforce-cpc <campaign-id> <max-cpc>",
	Short: "Lower channel bids so the cost per application meets max-cpc",
	Args:  cobra.ExactArgs(2),
	RunE:  runEnforceCPC,
}

var syncCmd = &cobra.Command{
	Use:   "sync <campaign-id>",
	Short: "Refresh the stored channel actuals of a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runSync,
}

var auditCmd = &cobra.Command{
	Use:   "audit <campaign-id>",
	Short: "Show the latest audit records of a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move the database schema to the embedded version, or --to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		to := migrateTo
		if to == 0 {
			to = migrations.Version
		}
		from, err := db.Migrate(cfg.Psql.Addr.String(), to)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d -> %d\n", from, to)
		return nil
	},
}

func runCheck(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		res, err := engine.Controller.CheckCampaignLimits(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	})
}

func runCheckAll(cmd *cobra.Command, args []string) error {
	return withEngine(func(ctx context.Context, engine *app.App) error {
		res := engine.Controller.CheckAllActiveCampaigns(ctx)
		if err := printJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if res.Error != "" {
			return fmt.Errorf("batch aborted: %s", res.Error)
		}
		return nil
	})
}

func runPause(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		out, err := engine.Controller.PauseCampaignDueToLimits(ctx, id, pauseReason, map[string]any{"source": "limitsctl"})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	})
}

func runResume(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		if err := engine.Controller.ResumeCampaign(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "campaign %d resumed\n", id)
		return nil
	})
}

func runEnforceCPC(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	maxCPC, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid max cpc %q", args[1])
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		out, err := engine.Controller.EnforceCPCLimits(ctx, id, maxCPC, enforceReason)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	})
}

func runSync(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		if err := engine.Syncer.ForceSyncCampaign(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "campaign %d synced\n", id)
		return nil
	})
}

func runAudit(cmd *cobra.Command, args []string) error {
	id, err := campaignArg(args)
	if err != nil {
		return err
	}
	return withEngine(func(ctx context.Context, engine *app.App) error {
		recs, err := engine.AuditLog.ListByCampaign(ctx, id, auditLimit)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), recs)
	})
}
