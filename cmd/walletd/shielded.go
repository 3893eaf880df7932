package main

import (
	"github.com/goodnatureofminers/zcashwallet-backend/internal/orchard"
	"go.uber.org/zap"
)

// shieldedLibrary returns the Orchard library linked into the binary and
// whether shielded support is enabled. No prover is linked yet, so the
// placeholder is returned and the profile is downgraded to transparent only.
func shieldedLibrary(profile *Profile, logger *zap.Logger) (orchard.Library, bool) {
	logger.Warn("shielded support disabled: no Orchard library is linked, " +
		"Orchard scanning, shielded sends and Orchard destinations are unavailable")
	for _, chain := range profile.disableShieldedSends() {
		logger.Warn("ignoring shielded_sends for chain", zap.String("chain", string(chain)))
	}
	return orchard.Unavailable{}, false
}
