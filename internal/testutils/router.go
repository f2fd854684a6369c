package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/api/routes"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}
