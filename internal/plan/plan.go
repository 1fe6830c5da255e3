// Package plan assembles, validates and persists upgrade plans. A plan is
// the single source of truth shared between proposal generation and command
// generation: the first step writes it next to the rendered proposal, the
// second one picks it up again.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/scheduler"
	"github.com/MalteHerrmann/proposer/internal/version"
)

// Plan describes a scheduled software upgrade. The JSON layout is stable;
// plans written by older binaries stay loadable.
type Plan struct {
	ChainID          string        `json:"chain_id"`
	ConfigFileName   string        `json:"config_file_name"`
	Home             string        `json:"home"`
	Network          model.Network `json:"network"`
	PreviousVersion  string        `json:"previous_version"`
	ProposalName     string        `json:"proposal_name"`
	ProposalFileName string        `json:"proposal_file_name"`
	Summary          string        `json:"summary"`
	TargetVersion    string        `json:"target_version"`
	UpgradeHeight    uint64        `json:"upgrade_height"`
	UpgradeTime      time.Time     `json:"upgrade_time"`
	VotingPeriod     int64         `json:"voting_period"`

	// CommonwealthLink is only set for mainnet upgrades, right before the
	// submission command is generated.
	CommonwealthLink string `json:"commonwealth_link,omitempty"`
}

// New derives a plan from the scheduling results. The proposal name and the
// file names embed the network display name and the target version, so every
// network/version combination maps to a distinct set of files.
func New(home string, network model.Network, previousVersion, targetVersion string, upgradeTime time.Time, upgradeHeight uint64, summary string) (*Plan, error) {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return nil, err
	}

	return &Plan{
		ChainID:          profile.ChainID,
		ConfigFileName:   fmt.Sprintf("proposal-%s-%s.json", network, targetVersion),
		Home:             home,
		Network:          network,
		PreviousVersion:  previousVersion,
		ProposalName:     fmt.Sprintf("Evmos %s %s Upgrade", network, targetVersion),
		ProposalFileName: fmt.Sprintf("proposal-%s-%s.md", network, targetVersion),
		Summary:          summary,
		TargetVersion:    targetVersion,
		UpgradeHeight:    upgradeHeight,
		UpgradeTime:      upgradeTime.UTC(),
		VotingPeriod:     int64(profile.VotingPeriod.Hours()),
	}, nil
}

// Validate checks the plan against the rules that must hold before anything
// is submitted: version formats matching the network, a weekday upgrade time
// and an existing node home.
func (p *Plan) Validate() error {
	if !version.IsValidForNetwork(p.Network, p.TargetVersion) {
		return fmt.Errorf("target version %q is not valid for %s", p.TargetVersion, p.Network)
	}
	if !version.IsValid(p.PreviousVersion) {
		return fmt.Errorf("previous version %q is not a valid version", p.PreviousVersion)
	}
	if !scheduler.IsValidUpgradeTime(p.UpgradeTime) {
		return fmt.Errorf("upgrade time %s falls on a weekend", p.UpgradeTime.Format(time.RFC3339))
	}
	if _, err := os.Stat(p.Home); err != nil {
		return fmt.Errorf("home directory %s: %w", p.Home, err)
	}

	return nil
}

// ScriptFileName returns the name of the submission script, derived from the
// proposal file name.
func (p *Plan) ScriptFileName() string {
	return strings.ReplaceAll(p.ProposalFileName, ".md", ".sh")
}

// Write stores the plan as indented JSON under its canonical file name
// inside dir.
func (p *Plan) Write(dir string) error {
	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, p.ConfigFileName), payload, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	return nil
}

// Load reads a plan from path and normalizes the network name so that
// profile lookups work on hand-edited files as well.
func Load(path string) (*Plan, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}

	network, err := model.ParseNetwork(string(p.Network))
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	p.Network = network

	return &p, nil
}

// FindConfig locates the plan file in dir without user interaction. Exactly
// one proposal-*.json has to be present; with several candidates the caller
// must name one explicitly.
func FindConfig(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "proposal-*.json"))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no proposal configuration found in %s", dir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple proposal configurations in %s (%s), pass the desired one explicitly", dir, strings.Join(matches, ", "))
	}
}

// DefaultHome returns the conventional node home directory for the network,
// resolved against the current user's home.
func DefaultHome(network model.Network) (string, error) {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return "", err
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}

	return filepath.Join(userHome, profile.HomeDirName), nil
}
