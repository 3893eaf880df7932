package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/keys"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/completer"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/lifecycle"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/scanner"
	"github.com/jinzhu/configor"
)

// Profile is the wallet configuration file.
type Profile struct {
	Chains   []ChainProfile       `yaml:"chains" toml:"chains" json:"chains"`
	Accounts []keys.AccountConfig `yaml:"accounts" toml:"accounts" json:"accounts"`
	Archive  ArchiveProfile       `yaml:"archive" toml:"archive" json:"archive"`
}

// ChainProfile configures one chain.
type ChainProfile struct {
	Name string `yaml:"name" toml:"name" json:"name" required:"true"`
	// Endpoint is the gRPC-web base URL of the lightwalletd server.
	Endpoint         string `yaml:"endpoint" toml:"endpoint" json:"endpoint" required:"true"`
	ExpiryDelta      uint32 `yaml:"expiry_delta" toml:"expiry_delta" json:"expiry_delta" default:"20"`
	MinConfirmations uint64 `yaml:"min_confirmations" toml:"min_confirmations" json:"min_confirmations" default:"10"`
	ShieldedSends    bool   `yaml:"shielded_sends" toml:"shielded_sends" json:"shielded_sends"`
	// Birthday defaults to the Orchard activation height of the chain.
	Birthday        uint64 `yaml:"birthday" toml:"birthday" json:"birthday"`
	ReorgMargin     uint64 `yaml:"reorg_margin" toml:"reorg_margin" json:"reorg_margin" default:"150"`
	ScanBatchSize   uint64 `yaml:"scan_batch_size" toml:"scan_batch_size" json:"scan_batch_size" default:"10"`
	SyncThreshold   uint64 `yaml:"sync_threshold" toml:"sync_threshold" json:"sync_threshold" default:"100"`
	TipPollInterval string `yaml:"tip_poll_interval" toml:"tip_poll_interval" json:"tip_poll_interval" default:"30s"`
	// BlockSignal is an optional ZMQ endpoint publishing hashblock.
	BlockSignal string `yaml:"block_signal" toml:"block_signal" json:"block_signal"`

	chain        model.ChainID
	pollInterval time.Duration
}

type ArchiveProfile struct {
	BatchSize     int    `yaml:"batch_size" toml:"batch_size" json:"batch_size" default:"500"`
	FlushInterval string `yaml:"flush_interval" toml:"flush_interval" json:"flush_interval" default:"2s"`
	FlushRPS      int    `yaml:"flush_rps" toml:"flush_rps" json:"flush_rps" default:"10"`

	flushInterval time.Duration
}

// loadProfile reads path and validates it. Environment variables prefixed
// with envPrefix override file values.
func loadProfile(path, envPrefix string) (*Profile, error) {
	var p Profile
	loader := configor.New(&configor.Config{ENVPrefix: envPrefix, ErrorOnUnmatchedKeys: true})
	if err := loader.Load(&p, path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if len(p.Chains) == 0 {
		return errors.New("no chains configured")
	}
	seen := make(map[model.ChainID]bool, len(p.Chains))
	for i := range p.Chains {
		c := &p.Chains[i]
		chain, err := model.ParseChain(c.Name)
		if err != nil {
			return err
		}
		if seen[chain] {
			return fmt.Errorf("chain %s configured twice", chain)
		}
		seen[chain] = true
		c.chain = chain

		if c.Endpoint == "" {
			return fmt.Errorf("chain %s: endpoint is required", chain)
		}
		if !strings.HasSuffix(c.Endpoint, "/") {
			c.Endpoint += "/"
		}
		if c.Birthday == 0 {
			c.Birthday = chain.OrchardActivation()
		}
		if c.pollInterval, err = time.ParseDuration(c.TipPollInterval); err != nil || c.pollInterval <= 0 {
			return fmt.Errorf("chain %s: bad tip_poll_interval %q", chain, c.TipPollInterval)
		}
	}
	if len(p.Accounts) == 0 {
		return errors.New("no accounts configured")
	}

	var err error
	if p.Archive.flushInterval, err = time.ParseDuration(p.Archive.FlushInterval); err != nil {
		return fmt.Errorf("archive: bad flush_interval %q", p.Archive.FlushInterval)
	}
	return nil
}

func (p *Profile) endpoints() map[model.ChainID]string {
	out := make(map[model.ChainID]string, len(p.Chains))
	for _, c := range p.Chains {
		out[c.chain] = c.Endpoint
	}
	return out
}

func (p *Profile) completerChains() map[model.ChainID]completer.ChainConfig {
	out := make(map[model.ChainID]completer.ChainConfig, len(p.Chains))
	for _, c := range p.Chains {
		out[c.chain] = completer.ChainConfig{ExpiryDelta: c.ExpiryDelta, MinConfirmations: c.MinConfirmations}
	}
	return out
}

func (p *Profile) lifecycleChains() map[model.ChainID]lifecycle.ChainConfig {
	out := make(map[model.ChainID]lifecycle.ChainConfig, len(p.Chains))
	for _, c := range p.Chains {
		out[c.chain] = lifecycle.ChainConfig{ShieldedSends: c.ShieldedSends}
	}
	return out
}

func (c ChainProfile) scannerConfig() scanner.Config {
	return scanner.Config{
		Birthday:      c.Birthday,
		BatchSize:     c.ScanBatchSize,
		SyncThreshold: c.SyncThreshold,
		ReorgMargin:   c.ReorgMargin,
	}
}

// shieldedAccounts are the accounts with an Orchard viewing key.
func (p *Profile) shieldedAccounts() []string {
	var out []string
	for _, a := range p.Accounts {
		if a.OrchardFullViewingKey != "" {
			out = append(out, a.Name)
		}
	}
	return out
}

// disableShieldedSends turns shielded sends off on every chain and returns
// the chains that had them on.
func (p *Profile) disableShieldedSends() []model.ChainID {
	var changed []model.ChainID
	for i := range p.Chains {
		if p.Chains[i].ShieldedSends {
			p.Chains[i].ShieldedSends = false
			changed = append(changed, p.Chains[i].chain)
		}
	}
	return changed
}
