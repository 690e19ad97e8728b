package routes

import (
	"net/http"

	"gestao_reparos/internal/config"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, cfg config.Config) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"env":     cfg.App.Env,
			"version": cfg.App.Version,
			"store":   cfg.Store.Backend,
		})
	})
}
