package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type TemplatesHandler struct {
	TemplateService *service.TemplateService
}

// HandleCreate godoc
//
//	@Summary		Create Template Endpoint
//	@Description	Register a landing-page template. Creating templates is unrestricted; the tier
//	@Description	quota applies when a link adopts one
//	@Tags			Templates
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name	formData	string				true	"Template name"
//	@Param			config	formData	string				true	"Template configuration as a JSON document"
//	@Success		200		{object}	TemplateResponse	"created template"
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/templates [post].
func (h *TemplatesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid form data")
		return
	}

	name := r.FormValue("name")
	config := r.FormValue("config")
	if name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if config == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "config is required")
		return
	}

	template, err := h.TemplateService.Create(ctx, userID, name, config)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTemplateRequest) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "config must be a valid JSON document")
			return
		}
		log.Error("failed to create template", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create template")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newTemplateResponse(template))
}

// HandleList godoc
//
//	@Summary		List Templates Endpoint
//	@Description	List the caller's landing-page templates, newest first
//	@Tags			Templates
//	@Produce		json
//	@Success		200	{object}	ListTemplatesResponse	"templates"
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/templates [get].
func (h *TemplatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	templates, err := h.TemplateService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list templates", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list templates")
		return
	}

	out := ListTemplatesResponse{Templates: make([]TemplateResponse, 0, len(templates))}
	for _, t := range templates {
		out.Templates = append(out.Templates, newTemplateResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
