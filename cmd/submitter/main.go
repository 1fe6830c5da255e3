package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/MalteHerrmann/proposer/internal/clientcfg"
	"github.com/MalteHerrmann/proposer/internal/cosmos"
	"github.com/MalteHerrmann/proposer/internal/metrics"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
	"github.com/MalteHerrmann/proposer/internal/release"
	"github.com/MalteHerrmann/proposer/internal/submit"
)

type config struct {
	Config           string `long:"config" env:"SUBMITTER_CONFIG" description:"path to the upgrade plan, defaults to the single proposal-*.json in the working directory"`
	Key              string `long:"key" env:"SUBMITTER_KEY" description:"name of the key submitting the proposal" required:"true"`
	ProposerAddress  string `long:"proposer-address" env:"SUBMITTER_PROPOSER_ADDRESS" description:"bech32 address to check for a positive fee balance"`
	CommonwealthLink string `long:"commonwealth-link" env:"SUBMITTER_COMMONWEALTH_LINK" description:"Commonwealth discussion link, required on mainnet"`
	Fees             string `long:"fees" env:"SUBMITTER_FEES" description:"transaction fees for the submission, defaults to 10000000000aevmos"`
	OutputDir        string `long:"output-dir" env:"SUBMITTER_OUTPUT_DIR" description:"directory the submission script is written to" default:"."`
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
		logger.Fatal("command generation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	configPath := cfg.Config
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		configPath, err = plan.FindConfig(wd)
		if err != nil {
			return err
		}
	}

	upgradePlan, err := plan.Load(configPath)
	if err != nil {
		return err
	}
	if err := upgradePlan.Validate(); err != nil {
		return fmt.Errorf("invalid upgrade plan %s: %w", configPath, err)
	}

	clientConfig, err := clientcfg.LoadFromHome(upgradePlan.Home)
	if err != nil {
		return err
	}

	if upgradePlan.Network == model.Mainnet || cfg.CommonwealthLink != "" {
		if cfg.CommonwealthLink == "" {
			return errors.New("a Commonwealth discussion link is required for mainnet upgrades")
		}
		if !submit.IsDiscussionLink(cfg.CommonwealthLink) {
			return fmt.Errorf("invalid commonwealth link %q", cfg.CommonwealthLink)
		}
		if err := submit.CheckDiscussionLink(ctx, nil, cfg.CommonwealthLink); err != nil {
			return err
		}
		upgradePlan.CommonwealthLink = cfg.CommonwealthLink
	}

	if cfg.ProposerAddress != "" {
		if err := checkBalance(ctx, upgradePlan.Network, cfg.ProposerAddress); err != nil {
			return err
		}
	}

	description, err := os.ReadFile(filepath.Join(filepath.Dir(configPath), upgradePlan.ProposalFileName))
	if err != nil {
		return fmt.Errorf("read proposal description: %w", err)
	}

	releases := release.NewClient(nil)
	rel, err := releases.ByTag(ctx, upgradePlan.TargetVersion)
	if err != nil {
		return err
	}
	assets, err := releases.AssetString(ctx, rel)
	if err != nil {
		return err
	}

	command, err := submit.RenderCommand(submit.CommandInput{
		Plan:         upgradePlan,
		ClientConfig: clientConfig,
		Key:          cfg.Key,
		Description:  string(description),
		Assets:       assets,
		Fees:         cfg.Fees,
	})
	if err != nil {
		return err
	}

	scriptPath := filepath.Join(cfg.OutputDir, upgradePlan.ScriptFileName())
	if err := os.WriteFile(scriptPath, []byte(command), 0o644); err != nil {
		return fmt.Errorf("write submission script: %w", err)
	}

	logger.Info("submission script generated",
		zap.String("script", scriptPath),
		zap.String("network", string(upgradePlan.Network)),
		zap.String("version", upgradePlan.TargetVersion),
	)
	return nil
}

// checkBalance verifies the proposer address holds funds in the fee denom.
func checkBalance(ctx context.Context, network model.Network, address string) error {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return err
	}

	client, err := cosmos.NewClientForNetwork(network, nil, metrics.NewRESTClient(network))
	if err != nil {
		return err
	}

	has, err := client.HasBalance(ctx, address, profile.Denom)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("address %s holds no %s to pay the proposal fees", address, profile.Denom)
	}
	return nil
}
