// Package submit renders the evmosd CLI command that submits an upgrade
// proposal on chain. It also validates the Commonwealth discussion link that
// mainnet proposals have to reference.
package submit

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/MalteHerrmann/proposer/internal/clientcfg"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
)

//go:embed templates/command.sh.tmpl
var templatesFS embed.FS

var commandTemplate = template.Must(template.ParseFS(templatesFS, "templates/command.sh.tmpl"))

// discussionLinkPrefix is where upgrade discussions for Evmos are hosted.
const discussionLinkPrefix = "https://commonwealth.im/evmos"

// TODO: get fees from network conditions instead of using a constant.
const defaultFees = "10000000000aevmos"

const defaultCheckTimeout = 30 * time.Second

// CommandInput collects everything needed to render the submission command.
// The description is the raw proposal Markdown; the assets string is the
// upgrade-info JSON for the target release. An empty Fees falls back to the
// default fee amount.
type CommandInput struct {
	Plan         *plan.Plan
	ClientConfig clientcfg.ClientConfig
	Key          string
	Description  string
	Assets       string
	Fees         string
}

type commandData struct {
	Assets       string
	ChainID      string
	Commonwealth string
	Description  string
	Fees         string
	Height       uint64
	Home         string
	Key          string
	Keyring      string
	NodeRPC      string
	Title        string
	Version      string
}

// RenderCommand produces the shell command that submits the upgrade proposal.
func RenderCommand(in CommandInput) (string, error) {
	if in.Plan == nil {
		return "", fmt.Errorf("no plan provided")
	}

	profile, err := model.ProfileFor(in.Plan.Network)
	if err != nil {
		return "", err
	}

	fees := in.Fees
	if fees == "" {
		fees = defaultFees
	}

	data := commandData{
		Assets:       in.Assets,
		ChainID:      in.Plan.ChainID,
		Commonwealth: in.Plan.CommonwealthLink,
		// Literal newlines would break the single-line shell argument.
		Description: strings.ReplaceAll(in.Description, "\n", `\n`),
		Fees:        fees,
		Height:      in.Plan.UpgradeHeight,
		Home:        in.Plan.Home,
		Key:         in.Key,
		Keyring:     in.ClientConfig.KeyringBackend,
		NodeRPC:     profile.RPCURL,
		Title:       in.Plan.ProposalName,
		Version:     in.Plan.TargetVersion,
	}

	var out strings.Builder
	if err := commandTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render command: %w", err)
	}

	return out.String(), nil
}

// IsDiscussionLink reports whether the link points to the Evmos space on
// Commonwealth.
func IsDiscussionLink(link string) bool {
	return strings.HasPrefix(link, discussionLinkPrefix)
}

// CheckDiscussionLink verifies that the linked discussion page is reachable.
// The page contents are not inspected; matching them against the proposal
// would need access to the Commonwealth API.
func CheckDiscussionLink(ctx context.Context, httpClient *http.Client, link string) error {
	if _, err := url.Parse(link); err != nil {
		return fmt.Errorf("parse discussion link: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultCheckTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return fmt.Errorf("build discussion request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch discussion page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discussion page returned status %d", resp.StatusCode)
	}

	return nil
}
