// Package clientcfg reads the client configuration of an evmosd node.
package clientcfg

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ClientConfig mirrors the client.toml written by evmosd into the node home.
type ClientConfig struct {
	ChainID        string `toml:"chain-id"`
	KeyringBackend string `toml:"keyring-backend"`
	Output         string `toml:"output"`
	Node           string `toml:"node"`
	BroadcastMode  string `toml:"broadcast-mode"`
}

// Load reads the client configuration from the given file.
func Load(path string) (ClientConfig, error) {
	var cfg ClientConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("load client config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromHome reads the client configuration from its conventional location
// inside the node home directory.
func LoadFromHome(home string) (ClientConfig, error) {
	return Load(filepath.Join(home, "config", "client.toml"))
}
