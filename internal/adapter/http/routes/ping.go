package routes

import (
	response "joinerypro/internal/adapter/http/dto/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
	})
}
