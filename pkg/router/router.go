package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/hivebudget/backend/api"
	"github.com/hivebudget/backend/internal/config"
	"github.com/hivebudget/backend/pkg/auth"
	"github.com/hivebudget/backend/pkg/billing"
	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/controllers/healthz"
	"github.com/hivebudget/backend/pkg/controllers/root"
	versions "github.com/hivebudget/backend/pkg/controllers/version"
	"github.com/hivebudget/backend/pkg/controllers/webhooks"
	"github.com/hivebudget/backend/pkg/httperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/hivebudget/backend/pkg/router.version=..."
var version = "0.0.0"

// Version returns the version of the backend.
func Version() string {
	return version
}

// Config sets up the router with all middlewares. The returned function
// must be called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Client IPs are only used for rate limiting. No proxy is trusted,
	// so the X-Forwarded-For header is not processed.
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(BaseURL(cfg.APIURL))
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	metrics := newRequestMetrics()
	if err := metrics.register(prometheus.DefaultRegisterer); err != nil {
		return nil, func() {}, err
	}
	r.Use(metrics.middleware())

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "HiveBudget"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for HiveBudget, a budgeting app for families and households."

	teardown := func() {
		metrics.unregister(prometheus.DefaultRegisterer)
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	root.RegisterRoutes(group.Group(""))
	versions.RegisterRoutes(group.Group("/version"), version)
	healthz.RegisterRoutes(group.Group("/healthz"))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	limiter := auth.NewLimiter(cfg.RateLimitPerMinute, time.Minute)
	authenticate := auth.Middleware(auth.NewVerifier(cfg.AuthSecret, cfg.AuthIssuer))

	// Only pass the payments when they are configured. A nil *Stripe in
	// the interface would not compare equal to nil.
	var payments interface {
		app.Payments
		webhooks.Payments
	}
	if stripe := billing.New(cfg); stripe != nil {
		payments = stripe
	}

	// Routes for the members of budgets
	a := group.Group("/app", authenticate, limiter.Middleware(auth.UserKey))
	{
		app.RegisterBudgetRoutes(a.Group("/budgets"))
		app.RegisterMemberRoutes(a.Group("/members"))
		app.RegisterInviteRoutes(a.Group("/invites"))
		app.RegisterAccountRoutes(a.Group("/accounts"))
		app.RegisterCategoryRoutes(a.Group("/categories"))
		app.RegisterCategoryRuleRoutes(a.Group("/category-rules"))
		app.RegisterGoalRoutes(a.Group("/goals"))
		app.RegisterIncomeSourceRoutes(a.Group("/income-sources"))
		app.RegisterRecurringBillRoutes(a.Group("/recurring-bills"))
		app.RegisterTransactionRoutes(a.Group("/transactions"))
		app.RegisterProfileRoutes(a.Group("/account"), payments)
	}

	// Routes for the operators of the service
	s := group.Group("/super-admin", authenticate, limiter.Middleware(auth.UserKey), auth.RequireSuperAdmin(cfg))
	{
		admin.RegisterStatsRoutes(s.Group("/stats"))
		admin.RegisterUserRoutes(s.Group("/users"))
		admin.RegisterPlanRoutes(s.Group("/plans"))
		admin.RegisterCouponRoutes(s.Group("/coupons"))
		admin.RegisterAccessLinkRoutes(s.Group("/access-links"))
	}

	// Webhooks are verified by their signature or secret. Deliveries all
	// come from the same few addresses and are retried on 429.
	webhooks.RegisterRoutes(group.Group("/webhooks"), cfg, payments)
}
