package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterHealth(router *gin.Engine) {
	router.GET("/manage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "operational"})
	})
}
