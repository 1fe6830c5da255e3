package proposal

import (
	"strings"
	"testing"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
)

func TestFormatUpgradeTime(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "october morning",
			time: time.Date(2023, 10, 23, 4, 0, 0, 0, time.UTC),
			want: "4AM UTC on Mon., October 23., 2023",
		},
		{
			name: "february evening",
			time: time.Date(2023, 2, 1, 16, 0, 0, 0, time.UTC),
			want: "4PM UTC on Wed., February 1., 2023",
		},
		{
			name: "midnight",
			time: time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC),
			want: "12AM UTC on Tue., October 24., 2023",
		},
		{
			name: "noon",
			time: time.Date(2023, 10, 24, 12, 0, 0, 0, time.UTC),
			want: "12PM UTC on Tue., October 24., 2023",
		},
		{
			name: "non utc input",
			time: time.Date(2023, 10, 23, 6, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			want: "4AM UTC on Mon., October 23., 2023",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatUpgradeTime(tt.time); got != tt.want {
				t.Fatalf("FormatUpgradeTime(%s) = %q, want %q", tt.time, got, tt.want)
			}
		})
	}
}

func TestHeightLink(t *testing.T) {
	tests := []struct {
		name    string
		network model.Network
		height  uint64
		want    string
	}{
		{
			name:    "mainnet",
			network: model.Mainnet,
			height:  16105000,
			want:    "[16,105,000](https://www.mintscan.io/evmos/blocks/16105000)",
		},
		{
			name:    "testnet",
			network: model.Testnet,
			height:  18500000,
			want:    "[18,500,000](https://testnet.mintscan.io/evmos-testnet/blocks/18500000)",
		},
		{
			name:    "local node",
			network: model.LocalNode,
			height:  60,
			want:    "[60](https://www.mintscan.io/evmos/blocks/60)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := HeightLink(tt.network, tt.height)
			if err != nil {
				t.Fatalf("HeightLink() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HeightLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeightLinkUnknownNetwork(t *testing.T) {
	if _, err := HeightLink(model.Network("devnet"), 1); err == nil {
		t.Fatal("HeightLink() expected error for unknown network")
	}
}

func TestReleaseLink(t *testing.T) {
	want := "[v14.0.0](https://github.com/evmos/evmos/releases/tag/v14.0.0)"
	if got := ReleaseLink("v14.0.0"); got != want {
		t.Fatalf("ReleaseLink() = %q, want %q", got, want)
	}
}

func TestDiffLink(t *testing.T) {
	want := "https://github.com/evmos/evmos/compare/v13.0.0..v14.0.0"
	if got := DiffLink("v13.0.0", "v14.0.0"); got != want {
		t.Fatalf("DiffLink() = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	p, err := plan.New(
		t.TempDir(),
		model.Mainnet,
		"v13.0.0",
		"v14.0.0",
		time.Date(2023, 10, 23, 16, 0, 0, 0, time.UTC),
		16105000,
		"- New feature A\n- Fix for bug B",
	)
	if err != nil {
		t.Fatalf("plan.New() unexpected error: %v", err)
	}

	rendered, err := Render(p)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	wantFragments := []string{
		"# Evmos Mainnet v14.0.0 Upgrade",
		"[16,105,000](https://www.mintscan.io/evmos/blocks/16105000)",
		"4PM UTC on Mon., October 23., 2023",
		"[v14.0.0](https://github.com/evmos/evmos/releases/tag/v14.0.0)",
		"[v13.0.0](https://github.com/evmos/evmos/releases/tag/v13.0.0)",
		"https://github.com/evmos/evmos/compare/v13.0.0..v14.0.0",
		"last 50,000 blocks",
		"120 hour voting period",
		"- New feature A\n- Fix for bug B",
		"Malte Herrmann, Evmos Core Team",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("Render() output is missing %q:\n%s", fragment, rendered)
		}
	}

	if strings.Contains(rendered, "{{") {
		t.Fatalf("Render() output contains unexpanded template markers:\n%s", rendered)
	}
}
