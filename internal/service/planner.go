package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MalteHerrmann/proposer/internal/chain"
	"github.com/MalteHerrmann/proposer/internal/estimator"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
	"github.com/MalteHerrmann/proposer/internal/scheduler"
	"github.com/MalteHerrmann/proposer/internal/version"
)

// ErrInvalidPlanRequest marks plan requests that fail input validation, as
// opposed to failures while talking to the chain or to GitHub.
var ErrInvalidPlanRequest = errors.New("invalid plan request")

// Planner computes upgrade schedules, height estimates and full upgrade
// plans for a single network.
type Planner struct {
	network  model.Network
	profile  model.Profile
	blocks   BlockSource
	releases ReleaseSource
	logger   *zap.Logger
	metrics  PlannerMetrics
}

// NewPlanner wires a planner for the given network. The release source may
// be nil when plan requests always carry an explicit summary.
func NewPlanner(
	network model.Network,
	blocks BlockSource,
	releases ReleaseSource,
	logger *zap.Logger,
	plannerMetrics PlannerMetrics,
) (*Planner, error) {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return nil, err
	}
	if blocks == nil {
		return nil, fmt.Errorf("no block source provided")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if plannerMetrics == nil {
		plannerMetrics = noopPlannerMetrics{}
	}

	return &Planner{
		network:  network,
		profile:  profile,
		blocks:   blocks,
		releases: releases,
		logger:   logger,
		metrics:  plannerMetrics,
	}, nil
}

// Network returns the network this planner serves.
func (p *Planner) Network() model.Network {
	return p.network
}

// Schedule returns the default upgrade time for a proposal submitted at now.
func (p *Planner) Schedule(now time.Time) time.Time {
	return scheduler.PlanDate(p.profile.VotingPeriod, now)
}

// EstimateHeight estimates the block height the chain reaches at target.
func (p *Planner) EstimateHeight(ctx context.Context, target time.Time) (height uint64, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveEstimate(err, started)
	}()

	latest, reference, err := chain.SamplePair(ctx, p.blocks, estimator.SampleDistance)
	if err != nil {
		return 0, fmt.Errorf("sample blocks: %w", err)
	}

	height, err = estimator.Estimate(latest, reference, target)
	if err != nil {
		return 0, err
	}

	p.logger.Debug("estimated upgrade height",
		zap.String("network", string(p.network)),
		zap.Uint64("latest_height", latest.Height),
		zap.Uint64("estimated_height", height),
		zap.Time("target_time", target))

	return height, nil
}

// PlanRequest carries the inputs for a full upgrade plan.
type PlanRequest struct {
	PreviousVersion string
	TargetVersion   string
	// Home is the node home directory recorded in the plan.
	Home string
	// Summary overrides the release notes of the target release when set.
	Summary string
	// UpgradeTime fixes the upgrade time when set; otherwise it is derived
	// from Now and the voting period.
	UpgradeTime time.Time
	// Now defaults to the current time.
	Now time.Time
}

// PlanUpgrade validates the request, schedules the upgrade and estimates the
// matching block height. The returned plan is not yet persisted.
func (p *Planner) PlanUpgrade(ctx context.Context, req PlanRequest) (result *plan.Plan, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObservePlan(err, started)
	}()

	if !version.IsValid(req.PreviousVersion) {
		return nil, fmt.Errorf("%w: previous version %q is not a valid version", ErrInvalidPlanRequest, req.PreviousVersion)
	}
	if !version.IsValidForNetwork(p.network, req.TargetVersion) {
		return nil, fmt.Errorf("%w: target version %q is not valid for %s", ErrInvalidPlanRequest, req.TargetVersion, p.network)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	upgradeTime := req.UpgradeTime
	if upgradeTime.IsZero() {
		upgradeTime = scheduler.PlanDate(p.profile.VotingPeriod, now)
	}
	if !scheduler.IsValidUpgradeTime(upgradeTime) {
		return nil, fmt.Errorf("%w: upgrade time %s falls on a weekend", ErrInvalidPlanRequest, upgradeTime.Format(time.RFC3339))
	}

	height, err := p.EstimateHeight(ctx, upgradeTime)
	if err != nil {
		return nil, err
	}

	summary := req.Summary
	if summary == "" {
		summary, err = p.releaseNotes(ctx, req.TargetVersion)
		if err != nil {
			return nil, err
		}
	}

	result, err = plan.New(req.Home, p.network, req.PreviousVersion, req.TargetVersion, upgradeTime, height, summary)
	if err != nil {
		return nil, err
	}

	p.logger.Info("planned upgrade",
		zap.String("network", string(p.network)),
		zap.String("target_version", req.TargetVersion),
		zap.Uint64("upgrade_height", height),
		zap.Time("upgrade_time", upgradeTime))

	return result, nil
}

func (p *Planner) releaseNotes(ctx context.Context, tag string) (string, error) {
	if p.releases == nil {
		return "", fmt.Errorf("no summary provided and no release source configured")
	}

	rel, err := p.releases.ByTag(ctx, tag)
	if err != nil {
		return "", fmt.Errorf("fetch release %s: %w", tag, err)
	}

	notes, err := rel.ReleaseNotes()
	if err != nil {
		return "", err
	}

	return notes, nil
}
