package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/avilanova/barcarate/internal/service"
)

// contextWithServiceTimeout bounds a request-scoped context so a slow
// upstream cannot hold the handler past the service budget.
func contextWithServiceTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), serviceTimeout)
}

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, probe Pinger, squadSvc service.SquadService, playerSvc service.PlayerService, transferSvc service.TransferService) {
	h := NewHealthHandler(probe)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewSquadHandler(squadSvc).Register(api)
		NewPlayerHandler(playerSvc).Register(api)
		NewTransferHandler(transferSvc).Register(api)
	}
}
