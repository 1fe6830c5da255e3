package version

import (
	"testing"

	"github.com/MalteHerrmann/proposer/internal/model"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "plain release", version: "v14.0.0", want: true},
		{name: "release candidate", version: "v14.0.0-rc1", want: true},
		{name: "multi digit components", version: "v15.10.12-rc10", want: true},
		{name: "missing patch", version: "v14.0.", want: false},
		{name: "missing major", version: "v.0.1", want: false},
		{name: "missing prefix", version: "14.0.0", want: false},
		{name: "trailing characters", version: "v14.0.0-rc1x", want: false},
		{name: "rc without number", version: "v14.0.0-rc", want: false},
		{name: "empty", version: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValid(tt.version); got != tt.want {
				t.Fatalf("IsValid(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestIsValidForNetwork(t *testing.T) {
	tests := []struct {
		name    string
		network model.Network
		version string
		want    bool
	}{
		{name: "local node plain", network: model.LocalNode, version: "v14.0.0", want: true},
		{name: "local node release candidate", network: model.LocalNode, version: "v14.0.0-rc1", want: true},
		{name: "local node missing patch", network: model.LocalNode, version: "v14.0", want: false},
		{name: "testnet requires release candidate", network: model.Testnet, version: "v14.0.0-rc1", want: true},
		{name: "testnet rejects plain release", network: model.Testnet, version: "v14.0.0", want: false},
		{name: "mainnet plain release", network: model.Mainnet, version: "v14.0.0", want: true},
		{name: "mainnet rejects release candidate", network: model.Mainnet, version: "v14.0.0-rc1", want: false},
		{name: "unknown network", network: model.Network("devnet"), version: "v14.0.0", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidForNetwork(tt.network, tt.version); got != tt.want {
				t.Fatalf("IsValidForNetwork(%v, %q) = %v, want %v", tt.network, tt.version, got, tt.want)
			}
		})
	}
}
