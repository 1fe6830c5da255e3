package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/MalteHerrmann/proposer/internal/cosmos"
	"github.com/MalteHerrmann/proposer/internal/metrics"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
	"github.com/MalteHerrmann/proposer/internal/proposal"
	"github.com/MalteHerrmann/proposer/internal/release"
	"github.com/MalteHerrmann/proposer/internal/scheduler"
	"github.com/MalteHerrmann/proposer/internal/service"
)

type config struct {
	Network         string `long:"network" env:"PROPOSER_NETWORK" description:"target network (mainnet, testnet or local)" default:"mainnet"`
	PreviousVersion string `long:"previous-version" env:"PROPOSER_PREVIOUS_VERSION" description:"currently running version" required:"true"`
	TargetVersion   string `long:"target-version" env:"PROPOSER_TARGET_VERSION" description:"version to upgrade to" required:"true"`
	UpgradeDate     string `long:"upgrade-date" env:"PROPOSER_UPGRADE_DATE" description:"upgrade day (YYYY-MM-DD), defaults to the next compliant day"`
	Summary         string `long:"summary" env:"PROPOSER_SUMMARY" description:"proposal summary, defaults to the release notes"`
	SummaryFile     string `long:"summary-file" env:"PROPOSER_SUMMARY_FILE" description:"file to read the proposal summary from"`
	Home            string `long:"home" env:"PROPOSER_HOME" description:"node home directory, defaults to the network's standard location"`
	OutputDir       string `long:"output-dir" env:"PROPOSER_OUTPUT_DIR" description:"directory the proposal files are written to" default:"."`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("proposal generation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network, err := model.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}

	home := cfg.Home
	if home == "" {
		home, err = plan.DefaultHome(network)
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
	}

	summary, err := resolveSummary(cfg)
	if err != nil {
		return err
	}

	req := service.PlanRequest{
		PreviousVersion: cfg.PreviousVersion,
		TargetVersion:   cfg.TargetVersion,
		Home:            home,
		Summary:         summary,
	}
	if cfg.UpgradeDate != "" {
		day, err := time.Parse("2006-01-02", cfg.UpgradeDate)
		if err != nil {
			return fmt.Errorf("invalid upgrade date %q (want YYYY-MM-DD): %w", cfg.UpgradeDate, err)
		}
		req.UpgradeTime = scheduler.AnchorTime(day.Date())
	}

	chainClient, err := cosmos.NewClientForNetwork(network, nil, metrics.NewRESTClient(network))
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	planner, err := service.NewPlanner(network, chainClient, release.NewClient(nil), logger, metrics.NewPlanner(network))
	if err != nil {
		return err
	}

	upgradePlan, err := planner.PlanUpgrade(ctx, req)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := upgradePlan.Write(cfg.OutputDir); err != nil {
		return err
	}

	text, err := proposal.Render(upgradePlan)
	if err != nil {
		return err
	}
	proposalPath := filepath.Join(cfg.OutputDir, upgradePlan.ProposalFileName)
	if err := os.WriteFile(proposalPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write proposal: %w", err)
	}

	logger.Info("proposal generated",
		zap.String("proposal", proposalPath),
		zap.String("plan", filepath.Join(cfg.OutputDir, upgradePlan.ConfigFileName)),
		zap.Uint64("upgrade_height", upgradePlan.UpgradeHeight),
		zap.Time("upgrade_time", upgradePlan.UpgradeTime),
	)
	return nil
}

// resolveSummary merges the two summary flags. An empty result makes the
// planner fall back to the GitHub release notes of the target version.
func resolveSummary(cfg config) (string, error) {
	if cfg.Summary != "" && cfg.SummaryFile != "" {
		return "", errors.New("only one of --summary and --summary-file may be set")
	}
	if cfg.SummaryFile == "" {
		return cfg.Summary, nil
	}

	raw, err := os.ReadFile(cfg.SummaryFile)
	if err != nil {
		return "", fmt.Errorf("read summary file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
