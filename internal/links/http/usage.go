package http

import (
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
)

type UsageHandler struct {
	UsageService *service.UsageService
}

// ServeHTTP godoc
//
//	@Summary		Usage Report Endpoint
//	@Description	Current usage against the caller's tier quotas: active links, templates in use,
//	@Description	strategies, and today's robot runs. Unlimited quotas report a limit of -1
//	@Tags			Usage
//	@Produce		json
//	@Success		200	{object}	domain.UsageReport	"links, templates, strategies, robot_today"
//	@Security		BearerAuth
//	@Router			/v1/usage [get].
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	report := h.UsageService.Report(ctx, userID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, report)
}
