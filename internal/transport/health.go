package transport

import (
	"sync"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the service name reported over the gRPC health protocol.
const HealthService = "zcashwallet.v1.Wallet"

type scanKey struct {
	account string
	chain   model.ChainID
}

// Health reports the wallet NOT_SERVING while any scanner is failed.
type Health struct {
	server *health.Server

	mu     sync.Mutex
	failed map[scanKey]struct{}
}

func NewHealth() *Health {
	h := &Health{server: health.NewServer(), failed: map[scanKey]struct{}{}}
	h.server.SetServingStatus(HealthService, healthpb.HealthCheckResponse_SERVING)
	return h
}

// Server is the health service to register on a gRPC server.
func (h *Health) Server() *health.Server {
	return h.server
}

// Observe tracks a scanner status. It has the shape of a scanner status
// observer.
func (h *Health) Observe(st model.SyncStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	k := scanKey{account: st.Account, chain: st.Chain}
	if st.State == model.SyncFailed {
		h.failed[k] = struct{}{}
	} else {
		delete(h.failed, k)
	}

	status := healthpb.HealthCheckResponse_SERVING
	if len(h.failed) > 0 {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus(HealthService, status)
}

// Shutdown reports NOT_SERVING for every service.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}
