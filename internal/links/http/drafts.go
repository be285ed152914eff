package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type DraftsHandler struct {
	DraftService *service.DraftService
}

// HandleList godoc
//
//	@Summary		List Draft Links Endpoint
//	@Description	List the caller's automation-sourced draft links awaiting approval, newest first
//	@Tags			Drafts
//	@Produce		json
//	@Success		200	{object}	ListLinksResponse	"links"
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/links/drafts [get].
func (h *DraftsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	links, err := h.DraftService.ListDrafts(ctx, userID)
	if err != nil {
		log.Error("failed to list drafts", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list drafts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newLinkListResponse(links))
}

// HandleApprove godoc
//
//	@Summary		Approve Draft Link Endpoint
//	@Description	Promote one of the caller's draft links to active. Drafts belonging to other
//	@Description	users, already-approved links, and unknown ids all return the same 404
//	@Tags			Drafts
//	@Produce		json
//	@Param			id	path		string			true	"Link ID"
//	@Success		200	{object}	LinkResponse	"approved link"
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/links/{id}/approve [post].
func (h *DraftsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	linkID := r.PathValue("id")
	if linkID == "" {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Link not found")
		return
	}

	link, err := h.DraftService.Approve(ctx, linkID, userID)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Link not found")
			return
		}
		log.Error("failed to approve draft", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to approve draft")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newLinkResponse(link))
}
