package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type StrategiesHandler struct {
	StrategyService *service.StrategyService
}

// HandleCreate godoc
//
//	@Summary		Create Strategy Endpoint
//	@Description	Register an automation strategy and mint its robot key. The key is returned
//	@Description	exactly once; only its last four characters are retrievable afterwards
//	@Tags			Strategies
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name	formData	string					true	"Strategy name"
//	@Param			source	formData	string					true	"Automation source: ptt, ettoday or sheets"
//	@Success		200		{object}	CreateStrategyResponse	"strategy with one-time robot_key"
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		403		{object}	httpx.ErrorResponse	"quota exceeded"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/strategies [post].
func (h *StrategiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid form data")
		return
	}

	name := r.FormValue("name")
	source := domain.StrategySource(r.FormValue("source"))
	if name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if !domain.ValidSource(source) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "source must be one of: ptt, ettoday, sheets")
		return
	}

	result, err := h.StrategyService.Create(ctx, userID, name, source)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStrategyRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid strategy parameters")
		case errors.Is(err, service.ErrStrategyQuotaExceeded):
			httpx.WriteError(w, http.StatusForbidden, "quota_exceeded", "Strategy quota reached for your tier")
		default:
			log.Error("failed to create strategy", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create strategy")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, CreateStrategyResponse{
		StrategyResponse: newStrategyResponse(result.Strategy),
		RobotKey:         result.RobotKey,
	})
}

// HandleList godoc
//
//	@Summary		List Strategies Endpoint
//	@Description	List the caller's automation strategies, newest first. Robot keys are not included
//	@Tags			Strategies
//	@Produce		json
//	@Success		200	{object}	ListStrategiesResponse	"strategies"
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/strategies [get].
func (h *StrategiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	strategies, err := h.StrategyService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list strategies", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list strategies")
		return
	}

	out := ListStrategiesResponse{Strategies: make([]StrategyResponse, 0, len(strategies))}
	for _, s := range strategies {
		out.Strategies = append(out.Strategies, newStrategyResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
