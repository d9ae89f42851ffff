package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HFrancia/AlumnosTKD3/config"
	"github.com/HFrancia/AlumnosTKD3/internal/api/handler"
	"github.com/HFrancia/AlumnosTKD3/internal/api/middleware"
	"github.com/HFrancia/AlumnosTKD3/pkg/redis"
)

// Report generation spins up headless Chrome for the PDF path, so it
// gets a tighter throttle than the CRUD surface.
const (
	reportRateLimit  = 10
	reportRateWindow = time.Minute
)

// Setup builds the Gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		alumnos := v1.Group("/alumnos")
		{
			alumnos.POST("", h.Alumno.Create)
			alumnos.GET("", h.Alumno.List)
			alumnos.GET("/:id", h.Alumno.Get)
			alumnos.PUT("/:id", h.Alumno.Update)
			alumnos.DELETE("/:id", h.Alumno.Delete)

			alumnos.POST("/:id/pagos", h.Pago.Register)
			alumnos.GET("/:id/pagos", h.Pago.ListByAlumno)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", h.Pedido.Register)
			pedidos.GET("", h.Pedido.List)
		}

		reportes := v1.Group("/reportes")
		reportes.Use(middleware.RateLimit(rdb, reportRateLimit, reportRateWindow))
		{
			reportes.GET("/alumnos", h.Reporte.Alumnos)
			reportes.GET("/alumnos/:id/pagos", h.Reporte.PagosDeAlumno)
			reportes.GET("/pedidos", h.Reporte.Pedidos)
		}
	}

	return r
}
