package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eventlink/internal/domain/user"
	"eventlink/internal/handler/api"
	"eventlink/internal/handler/middleware"
	"eventlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Company    *api.CompanyHandler
	Event      *api.EventHandler
	Profile    *api.ProfileHandler
	Public     *api.PublicHandler
	Networking *api.NetworkingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{
					Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		companies := apiGroup.Group("/companies")
		companies.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOrganizer))
		{
			addRoutes(companies, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Company.List},
				{Method: http.MethodPost, Path: "", Handler: h.Company.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Company.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Company.Update},
				{
					Method: http.MethodDelete, Path: "/:id", Handler: h.Company.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOrganizer))
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.List},
				{Method: http.MethodPost, Path: "", Handler: h.Event.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Event.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.Delete},
				{Method: http.MethodGet, Path: "/:id/profiles", Handler: h.Profile.ListByEvent},
			})
		}

		profiles := apiGroup.Group("/profiles")
		profiles.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOrganizer))
		{
			addRoutes(profiles, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Profile.Get},
				{
					Method: http.MethodDelete, Path: "/:id", Handler: h.Profile.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		// Attendee side: no login, just an event code in the path and an
		// access code in the payload or query.
		public := apiGroup.Group("/public/events/:event_code")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Public.GetEvent},
				{Method: http.MethodPost, Path: "/register", Handler: h.Public.Register},
				{Method: http.MethodPost, Path: "/check-existing", Handler: h.Public.CheckExisting},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Public.Verify},
				{Method: http.MethodGet, Path: "/profile", Handler: h.Public.GetOwnProfile},
				{Method: http.MethodPatch, Path: "/profile", Handler: h.Public.UpdateOwnProfile},
				{Method: http.MethodGet, Path: "/directory", Handler: h.Public.Directory},
				{Method: http.MethodPost, Path: "/networking/request", Handler: h.Networking.RequestSlot},
				{Method: http.MethodPatch, Path: "/networking/:slot_id", Handler: h.Networking.DecideSlot},
				{Method: http.MethodDelete, Path: "/networking/:slot_id", Handler: h.Networking.CancelSlot},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
