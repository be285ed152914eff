package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/internal/links/store/drivers/sqlite"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/idx"
)

const (
	testSecret = "test-secret"
	testIssuer = "linkmint-auth"
)

type testEnv struct {
	store  *sqlite.Store
	router *Router
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	membership := &service.MembershipService{Store: st}
	links, err := service.NewLinkService(st, membership, "test-salt")
	require.NoError(t, err)

	router := NewRouter([]byte(testSecret), testIssuer, "test", st, logger)
	router.MembershipService = membership
	router.UsageService = &service.UsageService{Store: st, Membership: membership}
	router.LinkService = links
	router.DraftService = &service.DraftService{Store: st}
	router.TemplateService = &service.TemplateService{Store: st}
	router.StrategyService = &service.StrategyService{Store: st, Membership: membership, Links: links}
	router.LicenseService = &service.LicenseService{Store: st}
	router.ApplyRoutes()

	return testEnv{store: st, router: router}
}

func signToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doForm(t *testing.T, env testEnv, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuthentication(t *testing.T) {
	env := newTestEnv(t)

	t.Run("requests without a token are unauthorized", func(t *testing.T) {
		rec := doForm(t, env, http.MethodGet, "/v1/membership", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("a valid token resolves the subject's membership", func(t *testing.T) {
		rec := doForm(t, env, http.MethodGet, "/v1/membership", signToken(t, "alice"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MembershipResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "FREE", resp.Tier)
		require.False(t, resp.IsMember)
	})

	t.Run("a token signed with the wrong secret is rejected", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong"))
		require.NoError(t, err)

		rec := doForm(t, env, http.MethodGet, "/v1/membership", forged, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateAndRedirect(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, "alice")

	rec := doForm(t, env, http.MethodPost, "/v1/links", token, url.Values{
		"affiliate_url": {"https://shop.example.com/item?aff=42"},
		"title":         {"Best Vacuum"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created LinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "active", created.Status)
	require.NotEmpty(t, created.ShortCode)

	t.Run("short code redirects to the affiliate url", func(t *testing.T) {
		rec := doForm(t, env, http.MethodGet, "/r/"+created.ShortCode, "", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "https://shop.example.com/item?aff=42", rec.Header().Get("Location"))
	})

	t.Run("unknown short codes are 404", func(t *testing.T) {
		rec := doForm(t, env, http.MethodGet, "/r/zzzzzzzz", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed affiliate urls are 400", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/links", token, url.Values{
			"affiliate_url": {"::not-a-url"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApproveDraftEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	now := time.Now().UTC()
	draft := domain.Link{
		ID:           idx.New().String(),
		UserID:       "alice",
		ShortCode:    "drft1",
		Status:       domain.StatusDraft,
		OGTitle:      "New Gadget",
		AffiliateURL: "https://shop.example.com/gadget",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, env.store.Links().CreateLink(ctx, draft))

	t.Run("another user's draft reads as missing", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/links/"+draft.ID+"/approve", signToken(t, "mallory"), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("the owner approves it", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/links/"+draft.ID+"/approve", signToken(t, "alice"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "active", resp.Status)
		require.Equal(t, "[automation]New Gadget", resp.Title)
	})

	t.Run("approving again is 404", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/links/"+draft.ID+"/approve", signToken(t, "alice"), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestActivateLicenseEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	token := signToken(t, "alice")

	require.NoError(t, env.store.Licenses().CreateLicenseKey(ctx, domain.LicenseKey{
		Key:       "PRO-AB12-CD34",
		Tier:      domain.LicensePro,
		CreatedAt: time.Now().UTC(),
	}))

	t.Run("malformed keys are 400", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/license/activate", token, url.Values{
			"license_key": {"XYZ-1234-5678"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid keys activate and report the expiry", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/license/activate", token, url.Values{
			"license_key": {" pro-ab12-cd34 "},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ActivateLicenseResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "MEMBER", resp.Tier)
		require.NotNil(t, resp.ExpireAt)
	})

	t.Run("used keys are 422", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/license/activate", token, url.Values{
			"license_key": {"PRO-AB12-CD34"},
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "activation_failed", resp.Error)
	})
}

func TestAutomationIngestEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A member with a strategy is the precondition for ingest.
	now := time.Now().UTC()
	require.NoError(t, env.store.Memberships().UpsertMembership(ctx, domain.Membership{
		UserID: "alice", Tier: domain.TierMember, CreatedAt: now, UpdatedAt: now,
	}))

	rec := doForm(t, env, http.MethodPost, "/v1/strategies", signToken(t, "alice"), url.Values{
		"name":   {"ptt watcher"},
		"source": {"ptt"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var strategy CreateStrategyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &strategy))
	require.NotEmpty(t, strategy.RobotKey)

	t.Run("a robot key queues a draft without a bearer token", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/automation/links", "", url.Values{
			"robot_key":     {strategy.RobotKey},
			"affiliate_url": {"https://shop.example.com/scraped"},
			"og_title":      {"Scraped Deal"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp IngestLinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "draft", resp.Status)
	})

	t.Run("unknown robot keys are 401", func(t *testing.T) {
		rec := doForm(t, env, http.MethodPost, "/v1/automation/links", "", url.Values{
			"robot_key":     {"bogus"},
			"affiliate_url": {"https://shop.example.com/scraped"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
