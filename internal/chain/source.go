// Package chain defines the boundary to live block data.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/MalteHerrmann/proposer/internal/model"
)

// ErrChainTooShort marks a chain whose height does not exceed the sample
// distance, so no reference block exists yet.
var ErrChainTooShort = errors.New("chain too short for the sample distance")

// Source provides block samples from a running network.
//
// Implementations own their robustness: retries, backoff, rate limiting and
// timeouts happen behind this interface, never in the callers.
type Source interface {
	LatestBlock(ctx context.Context) (model.BlockSample, error)
	BlockAt(ctx context.Context, height uint64) (model.BlockSample, error)
}

// SamplePair fetches the latest block and the block exactly distance blocks
// earlier. Both samples must exist before any estimation can run, so the
// second fetch is not attempted when the first fails.
func SamplePair(ctx context.Context, src Source, distance uint64) (latest, reference model.BlockSample, err error) {
	latest, err = src.LatestBlock(ctx)
	if err != nil {
		return model.BlockSample{}, model.BlockSample{}, fmt.Errorf("get latest block: %w", err)
	}

	if latest.Height <= distance {
		return model.BlockSample{}, model.BlockSample{}, fmt.Errorf(
			"%w: height %d, distance %d", ErrChainTooShort, latest.Height, distance,
		)
	}

	reference, err = src.BlockAt(ctx, latest.Height-distance)
	if err != nil {
		return model.BlockSample{}, model.BlockSample{}, fmt.Errorf("get block at height %d: %w", latest.Height-distance, err)
	}

	return latest, reference, nil
}
