package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

// AutomationHandler receives link submissions from scraper robots. Callers
// authenticate with a strategy's robot key, not a bearer token.
type AutomationHandler struct {
	StrategyService *service.StrategyService
}

// ServeHTTP godoc
//
//	@Summary		Robot Link Ingest Endpoint
//	@Description	Submit a scraped affiliate link as a draft for the strategy owner's review.
//	@Description	Authenticated by the robot_key minted at strategy creation
//	@Tags			Strategies
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			robot_key		formData	string	true	"Strategy robot key"
//	@Param			affiliate_url	formData	string	true	"Scraped affiliate URL"
//	@Param			og_title		formData	string	false	"Open Graph title from the scraped page"
//	@Param			og_description	formData	string	false	"Open Graph description"
//	@Param			og_image		formData	string	false	"Open Graph image URL"
//	@Success		200				{object}	IngestLinkResponse	"queued draft"
//	@Failure		400				{object}	httpx.ErrorResponse
//	@Failure		401				{object}	httpx.ErrorResponse	"unknown or disabled robot key"
//	@Failure		403				{object}	httpx.ErrorResponse	"daily robot quota exhausted"
//	@Failure		500				{object}	httpx.ErrorResponse
//	@Router			/v1/automation/links [post].
func (h *AutomationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid form data")
		return
	}

	robotKey := r.FormValue("robot_key")
	affiliateURL := r.FormValue("affiliate_url")
	if robotKey == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "robot_key is required")
		return
	}
	if affiliateURL == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "affiliate_url is required")
		return
	}

	link, err := h.StrategyService.IngestLink(ctx, robotKey, service.CreateLinkParams{
		OGTitle:       r.FormValue("og_title"),
		OGDescription: r.FormValue("og_description"),
		OGImage:       r.FormValue("og_image"),
		AffiliateURL:  affiliateURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStrategyRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid ingest parameters")
		case errors.Is(err, service.ErrStrategyNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_key", "Robot key is unknown or disabled")
		case errors.Is(err, service.ErrRobotQuotaExceeded):
			httpx.WriteError(w, http.StatusForbidden, "quota_exceeded", "Daily robot quota exhausted")
		default:
			log.Error("failed to ingest link", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to ingest link")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, IngestLinkResponse{
		LinkID:    link.ID,
		ShortCode: link.ShortCode,
		Status:    string(link.Status),
	})
}
