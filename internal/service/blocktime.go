package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MalteHerrmann/proposer/pkg/safe"
	"github.com/MalteHerrmann/proposer/pkg/workerpool"
)

// maxBlockTimeWorkers caps concurrent block fetches per analysis. The REST
// providers rate limit per client, so more workers would only queue up.
const maxBlockTimeWorkers = 8

// BlockTimeStats summarizes the spacing of consecutive blocks.
type BlockTimeStats struct {
	FromHeight     uint64  `json:"from_height"`
	ToHeight       uint64  `json:"to_height"`
	Intervals      int     `json:"intervals"`
	AverageSeconds float64 `json:"average_seconds"`
	MinSeconds     float64 `json:"min_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
	StdDevSeconds  float64 `json:"std_dev_seconds"`
}

// BlockTimes measures the block time distribution over the last window
// intervals, ending at the chain head.
func (p *Planner) BlockTimes(ctx context.Context, window int) (stats BlockTimeStats, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveBlockTimes(err, window, started)
	}()

	if window < 1 {
		return BlockTimeStats{}, fmt.Errorf("window must be positive, got %d", window)
	}

	latest, err := p.blocks.LatestBlock(ctx)
	if err != nil {
		return BlockTimeStats{}, fmt.Errorf("get latest block: %w", err)
	}

	span, err := safe.Uint64(window)
	if err != nil {
		return BlockTimeStats{}, err
	}
	if latest.Height <= span {
		return BlockTimeStats{}, fmt.Errorf("chain height %d is not above the window %d", latest.Height, window)
	}
	first := latest.Height - span

	// window intervals need window+1 block times; the head is already known.
	times := make([]time.Time, window+1)
	times[window] = latest.Time

	heights := make([]uint64, 0, window)
	for height := first; height < latest.Height; height++ {
		heights = append(heights, height)
	}

	err = workerpool.Process(ctx, maxBlockTimeWorkers, heights, func(ctx context.Context, height uint64) error {
		sample, err := p.blocks.BlockAt(ctx, height)
		if err != nil {
			return fmt.Errorf("get block at height %d: %w", height, err)
		}
		times[height-first] = sample.Time
		return nil
	}, nil)
	if err != nil {
		return BlockTimeStats{}, err
	}

	return analyzeBlockTimes(first, latest.Height, times), nil
}

// analyzeBlockTimes computes the interval statistics over an ascending list
// of block times.
func analyzeBlockTimes(from, to uint64, times []time.Time) BlockTimeStats {
	intervals := len(times) - 1
	average := times[intervals].Sub(times[0]).Seconds() / float64(intervals)

	variance, minSeconds, maxSeconds := float64(0), float64(0), float64(0)
	for i := 0; i < intervals; i++ {
		diff := times[i+1].Sub(times[i]).Seconds()
		if minSeconds == 0 || diff < minSeconds {
			minSeconds = diff
		}
		if diff > maxSeconds {
			maxSeconds = diff
		}
		variance += (average - diff) * (average - diff)
	}

	return BlockTimeStats{
		FromHeight:     from,
		ToHeight:       to,
		Intervals:      intervals,
		AverageSeconds: average,
		MinSeconds:     minSeconds,
		MaxSeconds:     maxSeconds,
		StdDevSeconds:  math.Sqrt(variance / float64(intervals)),
	}
}
