// Package keys holds account signing material for transparent and Orchard
// spends.
package keys

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/zcash"
)

// AccountConfig is the key material of one account as loaded from the
// keystore file.
type AccountConfig struct {
	Name                  string   `yaml:"name" json:"name" toml:"name" required:"true"`
	WIFs                  []string `yaml:"wifs" json:"wifs" toml:"wifs"`
	OrchardFullViewingKey string   `yaml:"orchard_fvk" json:"orchard_fvk" toml:"orchard_fvk"`
	OrchardSpendingKey    string   `yaml:"orchard_sk" json:"orchard_sk" toml:"orchard_sk"`
}

type transparentKey struct {
	priv       *btcec.PrivateKey
	compressed bool
}

func (k transparentKey) pubKey() []byte {
	if k.compressed {
		return k.priv.PubKey().SerializeCompressed()
	}
	return k.priv.PubKey().SerializeUncompressed()
}

type account struct {
	keys    []transparentKey
	byAddr  map[string]transparentKey
	orchard orchard.Keys
}

// Keystore is an in-memory key provider.
type Keystore struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

// NewKeystore decodes every account. Transparent addresses are derived for
// both networks so a key signs wherever its address is used.
func NewKeystore(accounts []AccountConfig) (*Keystore, error) {
	ks := &Keystore{accounts: make(map[string]*account, len(accounts))}
	for _, cfg := range accounts {
		if err := ks.add(cfg); err != nil {
			return nil, fmt.Errorf("account %q: %w", cfg.Name, err)
		}
	}
	return ks, nil
}

func (ks *Keystore) add(cfg AccountConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("account name is required")
	}
	acc := &account{byAddr: make(map[string]transparentKey)}

	for i, encoded := range cfg.WIFs {
		wif, err := btcutil.DecodeWIF(encoded)
		if err != nil {
			return fmt.Errorf("decode wif %d: %w", i, err)
		}
		key := transparentKey{priv: wif.PrivKey, compressed: wif.CompressPubKey}
		acc.keys = append(acc.keys, key)
		for _, params := range []*zcash.Params{zcash.MainNetParams, zcash.TestNetParams} {
			addr, err := zcash.PubKeyHashAddress(key.pubKey(), params)
			if err != nil {
				return fmt.Errorf("derive %s address %d: %w", params.Name, i, err)
			}
			acc.byAddr[addr] = key
		}
	}

	var err error
	if acc.orchard.FullViewingKey, err = hex.DecodeString(cfg.OrchardFullViewingKey); err != nil {
		return fmt.Errorf("decode orchard viewing key: %w", err)
	}
	if acc.orchard.SpendingKey, err = hex.DecodeString(cfg.OrchardSpendingKey); err != nil {
		return fmt.Errorf("decode orchard spending key: %w", err)
	}

	ks.mu.Lock()
	ks.accounts[cfg.Name] = acc
	ks.mu.Unlock()
	return nil
}

func (ks *Keystore) account(name string) (*account, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	acc, ok := ks.accounts[name]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", name, model.ErrKeyNotFound)
	}
	return acc, nil
}

// SignDigest signs digest with the key behind address and returns the DER
// signature and serialized public key.
func (ks *Keystore) SignDigest(_ context.Context, accountName, address string, digest [32]byte) ([]byte, []byte, error) {
	acc, err := ks.account(accountName)
	if err != nil {
		return nil, nil, err
	}
	key, ok := acc.byAddr[address]
	if !ok {
		return nil, nil, fmt.Errorf("address %s: %w", address, model.ErrKeyNotFound)
	}
	sig := ecdsa.Sign(key.priv, digest[:])
	return sig.Serialize(), key.pubKey(), nil
}

// OrchardKeys returns the Orchard keys of the account.
func (ks *Keystore) OrchardKeys(_ context.Context, accountName string) (orchard.Keys, error) {
	acc, err := ks.account(accountName)
	if err != nil {
		return orchard.Keys{}, err
	}
	if len(acc.orchard.FullViewingKey) == 0 {
		return orchard.Keys{}, fmt.Errorf("account %q has no orchard keys: %w", accountName, model.ErrKeyNotFound)
	}
	return acc.orchard, nil
}

// Addresses returns the sorted transparent addresses of the account on chain.
func (ks *Keystore) Addresses(_ context.Context, accountName string, chain model.ChainID) ([]string, error) {
	acc, err := ks.account(accountName)
	if err != nil {
		return nil, err
	}
	params, err := zcash.ParamsForNetwork(chain.Network())
	if err != nil {
		return nil, err
	}
	addresses := make([]string, 0, len(acc.keys))
	for _, key := range acc.keys {
		addr, err := zcash.PubKeyHashAddress(key.pubKey(), params)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)
	return addresses, nil
}

// Accounts returns the configured account names.
func (ks *Keystore) Accounts() []string {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	names := make([]string, 0, len(ks.accounts))
	for name := range ks.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
