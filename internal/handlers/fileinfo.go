package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muandane/special-stack/icond/internal/probe"
)

// GetFileInfo handles GET /files/info?path=... It reports existence,
// kind and freshness fields without failing on missing paths.
func GetFileInfo(c *gin.Context) {
	path := c.Query("path")
	if err := probe.ValidatePath(path); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, probe.Info(path))
}
