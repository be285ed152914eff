package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/service"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/linkmintapp/linkmint/pkg/slogx"

	_ "github.com/linkmintapp/linkmint/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	jwtSecret    []byte
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	MembershipService *service.MembershipService
	UsageService      *service.UsageService
	LinkService       *service.LinkService
	DraftService      *service.DraftService
	TemplateService   *service.TemplateService
	StrategyService   *service.StrategyService
	LicenseService    *service.LicenseService
}

func NewRouter(
	jwtSecret []byte,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		jwtSecret:    jwtSecret,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLinks()
	r.registerDrafts()
	r.registerUsage()
	r.registerMembership()
	r.registerLicense()
	r.registerTemplates()
	r.registerStrategies()
	r.registerRedirect()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			linkmint API
//	@version		0.1.0
//	@description	Affiliate short-link management with membership gating, landing templates,
//	@description	automation strategies and a draft approval workflow.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token issued by the auth service. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies bearer tokens from the external auth service.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.jwtSecret, r.issuer)
}

func (r *Router) registerLinks() {
	h := &LinksHandler{LinkService: r.LinkService}

	r.Mux.Handle("POST /v1/links",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/links",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDrafts() {
	h := &DraftsHandler{DraftService: r.DraftService}

	r.Mux.Handle("GET /v1/links/drafts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/links/{id}/approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsage() {
	h := &UsageHandler{UsageService: r.UsageService}

	r.Mux.Handle("GET /v1/usage",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMembership() {
	h := &MembershipHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/membership",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLicense() {
	// Strict rate limit: license keys are guessable-looking strings and the
	// endpoint must not become an oracle.
	h := &LicenseHandler{LicenseService: r.LicenseService}

	r.Mux.Handle("POST /v1/license/activate",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTemplates() {
	h := &TemplatesHandler{TemplateService: r.TemplateService}

	r.Mux.Handle("POST /v1/templates",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/templates",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerStrategies() {
	h := &StrategiesHandler{StrategyService: r.StrategyService}

	r.Mux.Handle("POST /v1/strategies",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/strategies",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Robot ingest authenticates with a strategy key, not a bearer token.
	ingest := &AutomationHandler{StrategyService: r.StrategyService}
	r.Mux.Handle("POST /v1/automation/links",
		httpx.Chain(ingest,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRedirect() {
	h := &RedirectHandler{LinkService: r.LinkService}

	r.Mux.Handle("GET /r/{code}",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
