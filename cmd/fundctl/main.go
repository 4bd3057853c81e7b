package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"server/internal/adapter/repo"
	"server/internal/infra"
	"server/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "fundctl",
		Short: "Admin tooling for the issue funding service",
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-run the funding evaluation for every open issue",
		Long: "Recomputes each open issue's raised total from its stored contributions " +
			"and resolves issues whose target has been met. Covers pledges whose " +
			"resolution check was interrupted by a store fault.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.Context())
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print community-wide stats as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context())
		},
	}

	root.AddCommand(reconcileCmd, statsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fundctl: %v\n", err)
		os.Exit(1)
	}
}

// connect opens the pool and wires a SQL runner the same way the API does.
func connect(ctx context.Context) (*infra.SQLRunner, func(), error) {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := infra.NewLogger(cfg.AppEnv)

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return infra.NewSQLRunner(pool, logger), pool.Close, nil
}

func runReconcile(ctx context.Context) error {
	runner, closePool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	issues := repo.NewIssueRepository(runner)
	contributions := repo.NewContributionRepository(runner)
	ledger := service.NewLedger(issues, contributions, runner.Logger)

	resolved, err := ledger.Reconcile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("reconcile complete, %d issue(s) resolved\n", resolved)
	return nil
}

func runStats(ctx context.Context) error {
	runner, closePool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	issues := repo.NewIssueRepository(runner)
	contributions := repo.NewContributionRepository(runner)
	aggregator := service.NewAggregator(repo.NewStatsRepository(runner), issues, contributions)

	stats, err := aggregator.Community(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
