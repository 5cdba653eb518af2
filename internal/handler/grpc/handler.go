// Package grpc implements the gRPC transport of the vault tasks server: the
// standard grpc.health.v1 service.
package grpc

import (
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name health checks are reported under, next to the
// empty name that stands for the whole server.
const ServiceName = "vault-tasks"

// Handler is the root gRPC transport handler.
//
// It is created once at startup and shared by the gRPC server. Health starts
// as NOT_SERVING until [Handler.SetServing] is called.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing marks the server and the vault tasks service as healthy.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health is shutting down")
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
