// Package router assembles the HTTP surface of the API.
package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/handler"
	"github.com/noah-isme/lostfound-api/internal/middleware"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/service"
	"github.com/noah-isme/lostfound-api/pkg/config"
	"github.com/noah-isme/lostfound-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/lostfound-api/pkg/middleware/cors"
	ratelimitmiddleware "github.com/noah-isme/lostfound-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/noah-isme/lostfound-api/pkg/middleware/requestid"
)

// Options carries the cross-cutting settings of the engine.
type Options struct {
	Env             string
	APIPrefix       string
	AllowedOrigins  []string
	AuthRateLimit   int64
	RateLimitPeriod time.Duration
	// MediaDir is served under /media when photos are stored on local disk.
	MediaDir string
	Logger   *zap.Logger
	Metrics  *service.MetricsService
	Tokens   middleware.TokenValidator
}

// Handlers groups every HTTP handler mounted by New.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Report       *handler.ReportHandler
	Claim        *handler.ClaimHandler
	Comment      *handler.CommentHandler
	Notification *handler.NotificationHandler
	Metrics      *handler.MetricsHandler
}

// New builds the gin engine with middleware and routes.
func New(opts Options, h Handlers) *gin.Engine {
	if opts.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.AuditDenied(opts.Logger))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	if opts.MediaDir != "" {
		r.StaticFS("/media", http.Dir(opts.MediaDir))
	}

	if opts.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := "/" + strings.Trim(opts.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	authRequired := middleware.JWT(opts.Tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	auth := api.Group("/auth")
	{
		limited := auth.Group("", ratelimitmiddleware.New(opts.AuthRateLimit, opts.RateLimitPeriod))
		limited.POST("/registration", h.Auth.Register)
		limited.POST("/login", h.Auth.Login)
		limited.POST("/token/refresh", h.Auth.Refresh)

		auth.POST("/logout", authRequired, h.Auth.Logout)
		auth.GET("/user", authRequired, h.Auth.Me)
	}

	reports := api.Group("/reports")
	{
		reports.GET("", h.Report.List)
		reports.GET("/:id", h.Report.Get)

		secured := reports.Group("", authRequired)
		secured.POST("", h.Report.Create)
		secured.PUT("/:id", h.Report.Update)
		secured.PATCH("/:id", h.Report.Update)
		secured.DELETE("/:id", h.Report.Delete)
		secured.POST("/:id/claim_item", h.Report.ClaimItem)
		secured.POST("/:id/item_found", h.Report.ItemFound)

		admin := secured.Group("", adminOnly)
		admin.PATCH("/:id/approve", h.Report.Approve)
		admin.PATCH("/:id/reject", h.Report.Reject)
		admin.GET("/activity-logs", h.Report.ActivityLogs)
		admin.GET("/resolution-logs", h.Report.ResolutionLogs)
		admin.GET("/resolution-logs/export", h.Report.ExportResolutionLogs)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", h.Comment.List)
		comments.GET("/:id", h.Comment.Get)

		secured := comments.Group("", authRequired)
		secured.POST("", h.Comment.Create)
		secured.PUT("/:id", h.Comment.Update)
		secured.PATCH("/:id", h.Comment.Update)
		secured.DELETE("/:id", h.Comment.Delete)
	}

	claims := api.Group("/claims", authRequired)
	{
		claims.GET("", h.Claim.List)
		claims.POST("", h.Claim.Create)
		claims.GET("/my-claims", h.Claim.MyClaims)
		claims.GET("/:id", h.Claim.Get)
		claims.PUT("/:id", h.Claim.Update)
		claims.PATCH("/:id", h.Claim.Update)
		claims.DELETE("/:id", h.Claim.Delete)
	}

	notifications := api.Group("/notifications", authRequired)
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/ws", h.Notification.Stream)
		notifications.GET("/:id", h.Notification.Get)
		notifications.PATCH("/:id", h.Notification.Update)
		notifications.DELETE("/:id", h.Notification.Delete)
	}

	users := api.Group("/users")
	{
		users.POST("", h.User.Create)

		secured := users.Group("", authRequired)
		secured.GET("", adminOnly, h.User.List)
		secured.GET("/:id", h.User.Get)
		secured.PUT("/:id", h.User.Update)
		secured.PATCH("/:id", h.User.Update)
		secured.DELETE("/:id", adminOnly, h.User.Delete)
	}

	return r
}
