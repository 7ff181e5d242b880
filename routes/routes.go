package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"villa-backend/controllers"
	"villa-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter assembles the gin engine from the resource controllers.
func SetupRouter(
	pc *controllers.PropertyController,
	rc *controllers.RoomNumberController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", pc.GetProperties)
			properties.GET("/:id", pc.GetProperty)
			properties.POST("", pc.CreateProperty)
			properties.PUT("/:id", pc.UpdateProperty)
			properties.PATCH("/:id", pc.PatchProperty)
			properties.DELETE("/:id", pc.DeleteProperty)
		}

		roomNumbers := api.Group("/roomnumbers")
		{
			roomNumbers.GET("", rc.GetRoomNumbers)
			roomNumbers.GET("/:roomNo", rc.GetRoomNumber)
			roomNumbers.POST("", rc.CreateRoomNumber)
			roomNumbers.PUT("/:roomNo", rc.UpdateRoomNumber)
			roomNumbers.PATCH("/:roomNo", rc.PatchRoomNumber)
			roomNumbers.DELETE("/:roomNo", rc.DeleteRoomNumber)
		}
	}

	return r
}
