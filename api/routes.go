package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdf_splitter/config"
)

// NewRouter builds the gin engine serving the split API.
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	SetupRoutes(r, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": ServiceName,
		})
	})

	return r
}

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/info", func(c *gin.Context) { HandleInfo(c, cfg) })
		apiGroup.POST("/split", func(c *gin.Context) { HandleSplit(c, cfg) })
	}
}
