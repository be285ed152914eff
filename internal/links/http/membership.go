package http

import (
	"net/http"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/pkg/httpx"
)

type MembershipHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Membership Status Endpoint
//	@Description	The caller's resolved membership. Expired memberships resolve as FREE with the
//	@Description	old expiry included so clients can show when access lapsed
//	@Tags			Membership
//	@Produce		json
//	@Success		200	{object}	MembershipResponse	"tier, is_member, expire_at"
//	@Security		BearerAuth
//	@Router			/v1/membership [get].
func (h *MembershipHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	status := h.MembershipService.Resolve(ctx, userID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, MembershipResponse{
		Tier:     string(status.Tier),
		IsMember: status.IsMember,
		ExpireAt: status.ExpireAt,
	})
}
