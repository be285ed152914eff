package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type LicenseHandler struct {
	LicenseService *service.LicenseService
}

// ServeHTTP godoc
//
//	@Summary		Activate License Endpoint
//	@Description	Redeem a license key for a membership upgrade. Keys are single-use; unknown and
//	@Description	already-used keys are rejected identically so the endpoint cannot be used as an oracle
//	@Tags			License
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			license_key	formData	string						true	"License key, e.g. PRO-XXXX-XXXX"
//	@Success		200			{object}	ActivateLicenseResponse		"tier, expire_at"
//	@Failure		400			{object}	httpx.ErrorResponse			"malformed key"
//	@Failure		422			{object}	httpx.ErrorResponse			"unknown or already-used key"
//	@Failure		500			{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/license/activate [post].
func (h *LicenseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid form data")
		return
	}

	key := r.FormValue("license_key")
	if key == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "license_key is required")
		return
	}

	result, err := h.LicenseService.Activate(ctx, userID, key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidKeyFormat):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "License key format is invalid")
		case errors.Is(err, service.ErrActivationFailed):
			httpx.WriteError(w, http.StatusUnprocessableEntity, "activation_failed", "License key cannot be activated")
		default:
			log.Error("failed to activate license", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to activate license")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ActivateLicenseResponse{
		Tier:     string(result.Membership.Tier),
		ExpireAt: result.Membership.ExpireAt,
	})
}
