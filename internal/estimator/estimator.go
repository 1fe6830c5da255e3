// Package estimator extrapolates future block heights from observed samples.
package estimator

import (
	"fmt"
	"math"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/pkg/safe"
)

// SampleDistance is the exact number of blocks between the two samples used
// for an estimation.
const SampleDistance uint64 = 50_000

// MalformedSampleError reports a sample pair that violates the estimation
// preconditions: wrong height ordering, wrong distance, or time running
// backwards between the samples.
type MalformedSampleError struct {
	Reason    string
	Latest    model.BlockSample
	Reference model.BlockSample
}

func (e *MalformedSampleError) Error() string {
	return fmt.Sprintf("malformed sample pair (latest %d, reference %d): %s",
		e.Latest.Height, e.Reference.Height, e.Reason)
}

// DegenerateRateError reports a sample pair with zero elapsed time between
// the two blocks, which leaves the block rate undefined.
type DegenerateRateError struct {
	Latest    model.BlockSample
	Reference model.BlockSample
}

func (e *DegenerateRateError) Error() string {
	return fmt.Sprintf("zero elapsed time between blocks %d and %d",
		e.Reference.Height, e.Latest.Height)
}

// Estimate extrapolates the chain height at the target time from two block
// samples exactly SampleDistance blocks apart.
//
// The block rate is averaged over the full span between the samples. Targets
// before the latest sample are allowed and yield heights below the latest
// one; callers decide whether that makes sense for them.
func Estimate(latest, reference model.BlockSample, target time.Time) (uint64, error) {
	if latest.Height <= reference.Height {
		return 0, &MalformedSampleError{
			Reason:    "latest height is not above the reference height",
			Latest:    latest,
			Reference: reference,
		}
	}
	if distance := latest.Height - reference.Height; distance != SampleDistance {
		return 0, &MalformedSampleError{
			Reason:    fmt.Sprintf("samples are %d blocks apart, want exactly %d", distance, SampleDistance),
			Latest:    latest,
			Reference: reference,
		}
	}
	if latest.Time.Equal(reference.Time) {
		return 0, &DegenerateRateError{Latest: latest, Reference: reference}
	}
	if latest.Time.Before(reference.Time) {
		return 0, &MalformedSampleError{
			Reason:    "latest block is not newer than the reference block",
			Latest:    latest,
			Reference: reference,
		}
	}

	secondsPerBlock := latest.Time.Sub(reference.Time).Seconds() / float64(SampleDistance)
	secondsToTarget := target.Sub(latest.Time).Seconds()

	// Truncate toward zero; never round or floor.
	blocksToTarget := secondsToTarget / secondsPerBlock
	if blocksToTarget >= math.MaxInt64 || blocksToTarget <= math.MinInt64 {
		return 0, fmt.Errorf("block delta %.0f for target %s out of range", blocksToTarget, target)
	}

	height, err := safe.AddDelta(latest.Height, int64(blocksToTarget))
	if err != nil {
		return 0, fmt.Errorf("apply block delta: %w", err)
	}
	return height, nil
}
