package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avilanova/barcarate/internal/service"
	"github.com/avilanova/barcarate/pkg/response"
)

type SquadHandler struct {
	svc service.SquadService
}

func NewSquadHandler(svc service.SquadService) *SquadHandler { return &SquadHandler{svc: svc} }

func (h *SquadHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/squad")
	{
		g.GET("", h.get)
		g.GET("/analysis", h.analysis)
	}
}

func (h *SquadHandler) get(c *gin.Context) {
	ctx, cancel := contextWithServiceTimeout(c)
	defer cancel()

	squad, err := h.svc.GetSquad(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, squad)
}

func (h *SquadHandler) analysis(c *gin.Context) {
	ctx, cancel := contextWithServiceTimeout(c)
	defer cancel()

	report, err := h.svc.AnalyzeSquad(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, report)
}
