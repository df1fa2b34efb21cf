package handler

import (
	"log/slog"
	"net/http"

	"github.com/Tibebua/NationalPark/internal/metrics"
	"github.com/Tibebua/NationalPark/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	NationalParkService *service.NationalParkService
	TrailService        *service.TrailService
	log                 *slog.Logger
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(ps *service.NationalParkService, ts *service.TrailService, log *slog.Logger) *Handler {
	return &Handler{
		NationalParkService: ps,
		TrailService:        ts,
		log:                 log,
	}
}

// NewRouter создает gin.Engine со всеми маршрутами API.
// Если rec не nil, запросы учитываются в метриках, а сами метрики доступны на /metrics.
func NewRouter(h *Handler, rec *metrics.Recorder) *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.log))
	if rec != nil {
		router.Use(rec.Middleware())
		router.GET("/metrics", gin.WrapH(rec.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/nationalparks", h.ListNationalParks)
		api.GET("/nationalparks/:id", h.GetNationalPark)
		api.POST("/nationalparks", h.CreateNationalPark)
		api.PATCH("/nationalparks/:id", h.UpdateNationalPark)
		api.DELETE("/nationalparks/:id", h.DeleteNationalPark)
	}

	// версионированные маршруты: /api/v1/Trails, /api/v2/NationalParks и т.д.
	versioned := api.Group("/:version", RequireAPIVersion())
	{
		versioned.GET("/NationalParks", h.ListNationalParksV2)

		versioned.GET("/Trails", h.ListTrails)
		versioned.GET("/Trails/GetTrailsInaNationalPark/:id", h.ListTrailsInNationalPark)
		versioned.GET("/Trails/:id", h.GetTrail)
		versioned.POST("/Trails", h.CreateTrail)
		versioned.PATCH("/Trails/:id", h.UpdateTrail)
		versioned.DELETE("/Trails/:id", h.DeleteTrail)
	}

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}
