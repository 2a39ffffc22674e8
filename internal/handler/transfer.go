package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avilanova/barcarate/internal/model"
	"github.com/avilanova/barcarate/internal/service"
	"github.com/avilanova/barcarate/pkg/response"
)

type TransferHandler struct {
	svc service.TransferService
}

func NewTransferHandler(svc service.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

func (h *TransferHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/transfers")
	{
		g.POST("/evaluate", h.evaluate)
	}
}

type evaluateTransferRequest struct {
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	CurrentTeam string `json:"currentTeam"`
	Position    string `json:"position"`
	Age         int    `json:"age"`
	Rating      int    `json:"rating"`
	MarketValue int64  `json:"marketValue"`
}

func (h *TransferHandler) evaluate(c *gin.Context) {
	var req evaluateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parser details stay internal
		return
	}

	candidate := model.TransferCandidate{
		ID:          req.PlayerID,
		Name:        req.PlayerName,
		CurrentTeam: req.CurrentTeam,
		Position:    model.ParsePosition(req.Position),
		Age:         req.Age,
		Rating:      req.Rating,
		MarketValue: req.MarketValue,
	}

	ctx, cancel := contextWithServiceTimeout(c)
	defer cancel()

	evaluation, err := h.svc.EvaluateTransfer(ctx, candidate)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, evaluation)
}
