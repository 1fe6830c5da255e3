package model

import "time"

// BlockSample is a single (height, timestamp) observation of a chain.
//
// A sample is transient: it is produced by one block query and consumed by
// one estimation, never persisted or refreshed in place.
type BlockSample struct {
	Height uint64
	Time   time.Time
}
