package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type LinksHandler struct {
	LinkService *service.LinkService
}

// HandleCreate godoc
//
//	@Summary		Create Link Endpoint
//	@Description	Create a new active short link for an affiliate URL, subject to the caller's tier quota
//	@Tags			Links
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			affiliate_url	formData	string			true	"Destination affiliate URL"
//	@Param			title			formData	string			false	"Display title"
//	@Param			og_title		formData	string			false	"Open Graph title"
//	@Param			og_description	formData	string			false	"Open Graph description"
//	@Param			og_image		formData	string			false	"Open Graph image URL"
//	@Param			template_id		formData	string			false	"Landing template to attach"
//	@Success		200				{object}	LinkResponse	"created link"
//	@Failure		400				{object}	httpx.ErrorResponse
//	@Failure		403				{object}	httpx.ErrorResponse	"quota exceeded"
//	@Failure		500				{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/links [post].
func (h *LinksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid form data")
		return
	}

	affiliateURL := r.FormValue("affiliate_url")
	if affiliateURL == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "affiliate_url is required")
		return
	}

	link, err := h.LinkService.Create(ctx, userID, service.CreateLinkParams{
		Title:         r.FormValue("title"),
		OGTitle:       r.FormValue("og_title"),
		OGDescription: r.FormValue("og_description"),
		OGImage:       r.FormValue("og_image"),
		AffiliateURL:  affiliateURL,
		TemplateID:    r.FormValue("template_id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLinkRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid affiliate URL or template reference")
		case errors.Is(err, service.ErrQuotaExceeded):
			httpx.WriteError(w, http.StatusForbidden, "quota_exceeded", "Active link quota reached for your tier")
		case errors.Is(err, service.ErrTemplateQuotaExceeded):
			httpx.WriteError(w, http.StatusForbidden, "quota_exceeded", "Template quota reached for your tier")
		default:
			log.Error("failed to create link", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create link")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newLinkResponse(link))
}

// HandleList godoc
//
//	@Summary		List Links Endpoint
//	@Description	List the caller's active links, newest first
//	@Tags			Links
//	@Produce		json
//	@Success		200	{object}	ListLinksResponse	"links"
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/links [get].
func (h *LinksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	links, err := h.LinkService.ListActive(ctx, userID)
	if err != nil {
		log.Error("failed to list links", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list links")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newLinkListResponse(links))
}
