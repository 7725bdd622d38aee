package grpcv1

import (
	"sync"

	"github.com/Egor213/LogiBoard/internal/repo/repoerrs"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UpstreamService is the health service name reporting whether the log
// service is reachable.
const UpstreamService = "logiboard.upstream"

// HealthController exposes the standard gRPC health service. The overall
// status is always SERVING while the upstream status follows remote fetches.
type HealthController struct {
	server *health.Server

	mu      sync.Mutex
	failing map[string]error
}

func NewHealthController() *HealthController {
	s := health.NewServer()
	s.SetServingStatus(UpstreamService, healthpb.HealthCheckResponse_UNKNOWN)
	return &HealthController{
		server:  s,
		failing: make(map[string]error),
	}
}

// ObserveUpstream marks the upstream NOT_SERVING while any resource fails
// with a network error or a retryable status.
func (hc *HealthController) ObserveUpstream(resource string, err error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if err != nil && repoerrs.IsRetryable(err) {
		hc.failing[resource] = err
	} else {
		delete(hc.failing, resource)
	}

	status := healthpb.HealthCheckResponse_SERVING
	if len(hc.failing) > 0 {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		log.WithFields(log.Fields{
			"resource": resource,
			"failing":  len(hc.failing),
		}).Debug("Upstream marked unhealthy")
	}
	hc.server.SetServingStatus(UpstreamService, status)
}

func (hc *HealthController) Server() healthpb.HealthServer {
	return hc.server
}

func (hc *HealthController) Shutdown() {
	hc.server.Shutdown()
}
