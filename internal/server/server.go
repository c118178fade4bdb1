package server

import (
	"context"
	"net/http"

	"github.com/dachraoui-ui/sport-club-mang/internal/activity"
	"github.com/dachraoui-ui/sport-club-mang/internal/auth"
	"github.com/dachraoui-ui/sport-club-mang/internal/config"
	"github.com/dachraoui-ui/sport-club-mang/internal/enrollment"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"
	"github.com/dachraoui-ui/sport-club-mang/internal/session"
	"github.com/dachraoui-ui/sport-club-mang/internal/stats"
	"github.com/dachraoui-ui/sport-club-mang/internal/subscription"
	"github.com/dachraoui-ui/sport-club-mang/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, blacklist *auth.Blacklist) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	photos := activity.NewPhotoStore(cfg.MediaDir)

	userHandler := user.NewHandler(db, blacklist, cfg.JWTSecret)
	memberHandler := member.NewHandler(db)
	activityHandler := activity.NewHandler(db, photos)
	enrollmentHandler := enrollment.NewHandler(db)
	subscriptionHandler := subscription.NewHandler(db)
	sessionHandler := session.NewHandler(db)
	statsHandler := stats.NewHandler(db)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.Static("/media", cfg.MediaDir)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, blacklist)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", userHandler.GetMe)
		protected.POST("/auth/logout", userHandler.Logout)

		protected.GET("/class-sessions", sessionHandler.List)
		protected.POST("/class-sessions", sessionHandler.Create)
		protected.GET("/class-sessions/:sessionID", sessionHandler.Get)
		protected.PUT("/class-sessions/:sessionID", sessionHandler.Update)
		protected.DELETE("/class-sessions/:sessionID", sessionHandler.Delete)
	}

	staff := router.Group("/")
	staff.Use(authMiddleware, auth.RequireStaff())
	{
		staff.GET("/members", memberHandler.List)
		staff.POST("/members", memberHandler.Create)
		staff.GET("/members/:memberID", memberHandler.Get)
		staff.PUT("/members/:memberID", memberHandler.Update)
		staff.DELETE("/members/:memberID", memberHandler.Delete)

		staff.GET("/activities", activityHandler.List)
		staff.POST("/activities", activityHandler.Create)
		staff.GET("/activities/:activityID", activityHandler.Get)
		staff.PUT("/activities/:activityID", activityHandler.Update)
		staff.DELETE("/activities/:activityID", activityHandler.Delete)

		staff.GET("/enrollments", enrollmentHandler.List)
		staff.POST("/enrollments", enrollmentHandler.Create)
		staff.GET("/enrollments/:enrollmentID", enrollmentHandler.Get)
		staff.PUT("/enrollments/:enrollmentID", enrollmentHandler.Update)
		staff.DELETE("/enrollments/:enrollmentID", enrollmentHandler.Delete)

		staff.GET("/subscriptions", subscriptionHandler.List)
		staff.POST("/subscriptions", subscriptionHandler.Create)
		staff.GET("/subscriptions/:subscriptionID", subscriptionHandler.Get)
		staff.PUT("/subscriptions/:subscriptionID", subscriptionHandler.Update)
		staff.DELETE("/subscriptions/:subscriptionID", subscriptionHandler.Delete)

		staff.GET("/stats", statsHandler.Overview)
		staff.GET("/stats/activities", statsHandler.Activities)
		staff.GET("/stats/members-per-activity", statsHandler.MembersPerActivity)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
