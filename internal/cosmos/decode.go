package cosmos

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
)

// Header times arrive as RFC 3339 with nanoseconds; only whole seconds
// matter for planning.
const blockTimeLayout = "2006-01-02T15:04:05"

type blockResponse struct {
	Block struct {
		Header struct {
			Height string `json:"height"`
			Time   string `json:"time"`
		} `json:"header"`
	} `json:"block"`
}

type balanceResponse struct {
	Balance struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"balance"`
}

// Fallback patterns for block bodies that do not match the expected schema.
// The header fields appear before any commit data, so the first match wins.
var (
	heightPattern = regexp.MustCompile(`"height"\s*:\s*"(\d+)"`)
	timePattern   = regexp.MustCompile(`"time"\s*:\s*"([^"]+)"`)
)

// parseBlockBody extracts height and time from a block query response. The
// structured decode is authoritative; the pattern extraction only applies
// when the body does not have the expected shape.
func parseBlockBody(body []byte) (model.BlockSample, error) {
	var decoded blockResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Block.Header.Height != "" {
		return sampleFromHeader(decoded.Block.Header.Height, decoded.Block.Header.Time)
	}

	heightMatch := heightPattern.FindSubmatch(body)
	timeMatch := timePattern.FindSubmatch(body)
	if heightMatch == nil || timeMatch == nil {
		return model.BlockSample{}, errors.New("body matches neither the block schema nor the fallback patterns")
	}
	return sampleFromHeader(string(heightMatch[1]), string(timeMatch[1]))
}

func sampleFromHeader(height, blockTime string) (model.BlockSample, error) {
	parsedHeight, err := strconv.ParseUint(height, 10, 64)
	if err != nil {
		return model.BlockSample{}, fmt.Errorf("parse height %q: %w", height, err)
	}

	parsedTime, err := parseBlockTime(blockTime)
	if err != nil {
		return model.BlockSample{}, err
	}

	return model.BlockSample{Height: parsedHeight, Time: parsedTime}, nil
}

// parseBlockTime drops fractional seconds and the zone marker before
// parsing. Header times are always UTC.
func parseBlockTime(s string) (time.Time, error) {
	trimmed := strings.TrimSuffix(s, "Z")
	if i := strings.IndexAny(trimmed, ".+"); i >= 0 {
		trimmed = trimmed[:i]
	}

	t, err := time.ParseInLocation(blockTimeLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse block time %q: %w", s, err)
	}
	return t, nil
}

func parseBalanceBody(body []byte) (string, error) {
	var decoded balanceResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode balance response: %w", err)
	}
	if decoded.Balance.Amount == "" {
		return "", errors.New("balance response has no amount")
	}
	return decoded.Balance.Amount, nil
}
