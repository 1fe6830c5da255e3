// Package version validates Evmos release versions.
package version

import (
	"regexp"

	"github.com/MalteHerrmann/proposer/internal/model"
)

var (
	genericPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+(-rc\d+)*$`)
	localPattern   = regexp.MustCompile(`^v\d+\.\d{1}\.\d+(-rc\d+)*$`)
	testnetPattern = regexp.MustCompile(`^v\d+\.\d{1}\.\d+-rc\d+$`)
	mainnetPattern = regexp.MustCompile(`^v\d+\.\d{1}\.\d+$`)
)

// IsValid reports whether s is a well-formed release version such as
// v14.0.0 or v14.0.0-rc1. Malformed input never errors, it is just invalid.
func IsValid(s string) bool {
	return genericPattern.MatchString(s)
}

// IsValidForNetwork applies the per-network release rules: testnet runs
// release candidates only, mainnet runs final releases only, and a local
// node runs either.
func IsValidForNetwork(n model.Network, s string) bool {
	switch n {
	case model.LocalNode:
		return localPattern.MatchString(s)
	case model.Testnet:
		return testnetPattern.MatchString(s)
	case model.Mainnet:
		return mainnetPattern.MatchString(s)
	default:
		return false
	}
}
