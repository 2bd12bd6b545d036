package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EstufaStatus handles GET /api/estufa/status. The greenhouse sensors are not
// wired into this backend yet; the frontend dashboard expects fixed values in
// the meantime.
// TODO: read the latest leituras_sensores row once the sensor bridge lands.
func EstufaStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"temperatura":  25.5,
			"humidade":     60,
			"bomba_ligada": false,
		})
	}
}
