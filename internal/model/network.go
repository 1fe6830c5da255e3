// Package model defines domain models for upgrade planning.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Network identifies the Evmos network an upgrade is planned for.
type Network string

var (
	// LocalNode targets a node running on localhost.
	LocalNode Network = "LocalNode"
	// Testnet targets the public Evmos testnet.
	Testnet Network = "Testnet"
	// Mainnet targets the Evmos mainnet.
	Mainnet Network = "Mainnet"
)

// ParseNetwork maps a user-supplied network name to a Network.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "local-node", "localnode":
		return LocalNode, nil
	case "testnet":
		return Testnet, nil
	case "mainnet":
		return Mainnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// String returns the display name used in proposal titles and file names.
func (n Network) String() string {
	if n == LocalNode {
		return "Local Node"
	}
	return string(n)
}

// Profile carries the fixed parameters of a network. Profiles are immutable;
// there is no way to register or override one at runtime.
type Profile struct {
	ChainID      string
	Denom        string
	RestURL      string
	RPCURL       string
	ExplorerURL  string
	VotingPeriod time.Duration
	HomeDirName  string
}

// ProfileFor returns the parameter set of the given network.
func ProfileFor(n Network) (Profile, error) {
	switch n {
	case LocalNode:
		return Profile{
			ChainID:      "evmos_9000-4",
			Denom:        "aevmos",
			RestURL:      "http://localhost:1317",
			RPCURL:       "http://localhost:26657",
			ExplorerURL:  "https://www.mintscan.io/evmos/blocks",
			VotingPeriod: time.Hour,
			HomeDirName:  ".tmp-evmosd",
		}, nil
	case Testnet:
		return Profile{
			ChainID:      "evmos_9000-4",
			Denom:        "atevmos",
			RestURL:      "https://rest.evmos-testnet.lava.build",
			RPCURL:       "https://tm.evmos-testnet.lava.build:26657",
			ExplorerURL:  "https://testnet.mintscan.io/evmos-testnet/blocks",
			VotingPeriod: 12 * time.Hour,
			HomeDirName:  ".evmosd",
		}, nil
	case Mainnet:
		return Profile{
			ChainID:      "evmos_9001-2",
			Denom:        "aevmos",
			RestURL:      "https://rest.evmos.lava.build",
			RPCURL:       "https://tm.evmos.lava.build:26657",
			ExplorerURL:  "https://www.mintscan.io/evmos/blocks",
			VotingPeriod: 120 * time.Hour,
			HomeDirName:  ".evmosd",
		}, nil
	default:
		return Profile{}, fmt.Errorf("unknown network %q", string(n))
	}
}
