package router

import (
	"time"

	"github.com/Valentin1965/VoltStore/internal/auth"
	"github.com/Valentin1965/VoltStore/internal/catalog"
	"github.com/Valentin1965/VoltStore/internal/kit"
	"github.com/Valentin1965/VoltStore/internal/middleware"
	"github.com/Valentin1965/VoltStore/internal/rates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the HTTP surface needs.
type Handlers struct {
	Auth    *auth.Handler
	Catalog *catalog.Handler
	Kit     *kit.Handler
	Rates   *rates.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/products", h.Catalog.List)
	r.GET("/rates", h.Rates.Get)

	kitGroup := r.Group("/kit")
	{
		kitGroup.POST("/recommend", h.Kit.Recommend)
		kitGroup.POST("/accept", h.Kit.Accept)
	}

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/products", h.Catalog.Create)
		admin.PUT("/products/:id", h.Catalog.Update)
		admin.DELETE("/products/:id", h.Catalog.Delete)
		admin.POST("/products/:id/images", h.Catalog.UploadImage)

		admin.POST("/rates/refresh", h.Rates.Refresh)
		admin.PUT("/rates", h.Rates.Update)
	}

	return r
}
