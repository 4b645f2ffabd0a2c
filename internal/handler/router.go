package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"restaurant-reservations/internal/handler/api"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Restaurant  *api.RestaurantHandler
	Table       *api.TableHandler
	Kitchen     *api.KitchenHandler
	Reservation *api.ReservationHandler
	Auth        *middleware.AuthMiddleware
	Logger      *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		restaurants := apiGroup.Group("/restaurants")
		{
			addRoutes(restaurants, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Restaurant.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Restaurant.Get},
				{Method: http.MethodGet, Path: "/:id/available-times", Handler: h.Restaurant.AvailableTimes},
				{Method: http.MethodGet, Path: "/:id/menus", Handler: h.Restaurant.CurrentMenus},
			})

			owner := []gin.HandlerFunc{h.Auth.RequireAuth(), h.Auth.RequireRestaurantOwner("id")}
			addRoutes(restaurants, []route{
				{Method: http.MethodGet, Path: "/:id/menus/all", Handler: h.Restaurant.AllMenus, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/tables", Handler: h.Restaurant.Tables, Mw: owner},
				{Method: http.MethodPut, Path: "/:id/tables", Handler: h.Table.BulkUpdate, Mw: owner},
				{Method: http.MethodDelete, Path: "/:id/tables/:tableId", Handler: h.Table.Delete, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/ingredients", Handler: h.Restaurant.Ingredients, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/kitchen/ingredients", Handler: h.Kitchen.Ingredients, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/kitchen/dishes", Handler: h.Kitchen.Dishes, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/kitchen/capacity", Handler: h.Kitchen.Capacity, Mw: owner},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(h.Auth.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.ChangeStatus},
				{Method: http.MethodPost, Path: "/:id/items", Handler: h.Reservation.AddMenuItem},
				{Method: http.MethodGet, Path: "/:id/ticket", Handler: h.Reservation.Ticket},
				{Method: http.MethodGet, Path: "/:id/menus", Handler: h.Reservation.Menus},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(h.Auth.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/restaurants/past", Handler: h.Restaurant.PastVisits},
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
