package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/avilanova/barcarate/internal/service"
	"github.com/avilanova/barcarate/pkg/response"
)

const serviceTimeout = 15 * time.Second

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.GET("/search", h.search)
	}
}

// search handles transfer target lookups. Position and team filters are
// optional; "all" is accepted as a no-op filter for frontend convenience.
func (h *PlayerHandler) search(c *gin.Context) {
	start := time.Now()
	query := c.Query("query")
	position := c.Query("position")
	team := c.Query("team")

	ctx, cancel := contextWithServiceTimeout(c)
	defer cancel()

	players, err := h.svc.SearchPlayers(ctx, query, position, team)

	logger := log.With().
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		status, _ := response.MapError(err)
		logger.Error().Err(err).Int("status", status).Msg("player search failed")
		response.WriteError(c, err)
		return
	}

	logger.Info().Int("status", http.StatusOK).Int("results", len(players)).Msg("player search served")
	response.WriteData(c, http.StatusOK, players)
}
