// Package proposal renders the Markdown description for a scheduled software
// upgrade. The description is what ends up on the governance proposal, so the
// rendering favors links over raw values wherever an explorer or GitHub page
// exists for them.
package proposal

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MalteHerrmann/proposer/internal/estimator"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
)

//go:embed templates/proposal.md.tmpl
var templatesFS embed.FS

var proposalTemplate = template.Must(template.ParseFS(templatesFS, "templates/proposal.md.tmpl"))

const author = "Malte Herrmann, Evmos Core Team"

// englishPrinter renders heights with thousands separators, e.g. "50,000".
var englishPrinter = message.NewPrinter(language.English)

type templateData struct {
	Author          string
	DiffLink        string
	EstimatedTime   string
	Features        string
	Height          string
	Name            string
	NBlocks         string
	Network         string
	PreviousVersion string
	Version         string
	VotingTime      int64
}

// Render produces the proposal description for the given plan.
func Render(p *plan.Plan) (string, error) {
	heightLink, err := HeightLink(p.Network, p.UpgradeHeight)
	if err != nil {
		return "", err
	}

	data := templateData{
		Author:          author,
		DiffLink:        DiffLink(p.PreviousVersion, p.TargetVersion),
		EstimatedTime:   FormatUpgradeTime(p.UpgradeTime),
		Features:        p.Summary,
		Height:          heightLink,
		Name:            p.ProposalName,
		NBlocks:         englishPrinter.Sprintf("%d", estimator.SampleDistance),
		Network:         p.Network.String(),
		PreviousVersion: ReleaseLink(p.PreviousVersion),
		Version:         ReleaseLink(p.TargetVersion),
		VotingTime:      p.VotingPeriod,
	}

	var out strings.Builder
	if err := proposalTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render proposal: %w", err)
	}

	return out.String(), nil
}

// HeightLink returns the Markdown link to the upgrade block in the network
// explorer, with the height formatted for readability.
func HeightLink(network model.Network, height uint64) (string, error) {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("[%s](%s/%d)", englishPrinter.Sprintf("%d", height), profile.ExplorerURL, height), nil
}

// ReleaseLink returns the Markdown link to the GitHub release page of the
// given version.
func ReleaseLink(version string) string {
	return fmt.Sprintf("[%s](https://github.com/evmos/evmos/releases/tag/%s)", version, version)
}

// DiffLink returns the GitHub comparison URL between the two versions.
func DiffLink(previous, target string) string {
	return fmt.Sprintf("https://github.com/evmos/evmos/compare/%s..%s", previous, target)
}

// FormatUpgradeTime renders the upgrade time the way it is announced in
// proposal texts, e.g. "4PM UTC on Mon., October 23., 2023".
func FormatUpgradeTime(t time.Time) string {
	t = t.UTC()

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}

	return fmt.Sprintf("%d%s UTC on %s., %s %d., %d", hour, meridiem, t.Format("Mon"), t.Month(), t.Day(), t.Year())
}
