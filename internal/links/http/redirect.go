package http

import (
	"errors"
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

type RedirectHandler struct {
	LinkService *service.LinkService
}

// ServeHTTP godoc
//
//	@Summary		Short Link Redirect Endpoint
//	@Description	Resolve a short code and redirect to its affiliate URL, counting the click.
//	@Description	Draft, archived and deleted codes respond 404 the same as unknown ones
//	@Tags			Redirect
//	@Param			code	path	string	true	"Short code"
//	@Success		302		"redirect to the affiliate URL"
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/r/{code} [get].
func (h *RedirectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	code := r.PathValue("code")
	if code == "" {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Link not found")
		return
	}

	link, err := h.LinkService.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Link not found")
			return
		}
		log.Error("failed to resolve short code", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to resolve link")
		return
	}

	// A cached redirect would skip click counting and survive archival.
	httpx.NoCache(w)
	http.Redirect(w, r, link.AffiliateURL, http.StatusFound)
}
