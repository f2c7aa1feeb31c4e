package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/container"
)

func PingHandler(c *container.AppContainer) gin.HandlerFunc {
	return func(g *gin.Context) {
		res := map[string]any{
			"ping":      "pong",
			"templates": c.Templates.Names(),
		}

		if err := c.CacheService.HealthCheck(g); err != nil {
			res["redis"] = err.Error()
			g.JSON(http.StatusServiceUnavailable, res)
			return
		}
		res["redis"] = "ok"
		g.JSON(http.StatusOK, res)
	}
}
