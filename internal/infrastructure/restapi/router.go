package restapi

import (
	"net/http"
	"slices"

	"synthetics_deployer/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter builds the gin engine with CORS, health, metrics and the v1 deployment routes.
func SetupRouter(handler *DeploymentHandler, serverCfg config.ServerConfig, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(serverCfg.CORSAllowedOrigins) == 0 || slices.Contains(serverCfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = serverCfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/networks", handler.ListNetworksHandler)
		v1.GET("/networks/:network", handler.GetNetworkHandler)
		v1.GET("/networks/:network/plan", handler.GetPlanHandler)
	}

	return router
}
