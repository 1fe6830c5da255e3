package service

import (
	"context"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/release"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource provides block samples from a chain endpoint.
	BlockSource interface {
		LatestBlock(ctx context.Context) (model.BlockSample, error)
		BlockAt(ctx context.Context, height uint64) (model.BlockSample, error)
	}

	// ReleaseSource resolves GitHub release information for upgrade targets.
	ReleaseSource interface {
		ByTag(ctx context.Context, tag string) (release.Release, error)
	}

	// PlannerMetrics records the outcome of planning operations.
	PlannerMetrics interface {
		ObserveEstimate(err error, started time.Time)
		ObservePlan(err error, started time.Time)
		ObserveBlockTimes(err error, window int, started time.Time)
	}
)

type noopPlannerMetrics struct{}

func (noopPlannerMetrics) ObserveEstimate(error, time.Time)        {}
func (noopPlannerMetrics) ObservePlan(error, time.Time)            {}
func (noopPlannerMetrics) ObserveBlockTimes(error, int, time.Time) {}
