package handler

import (
	"net/http"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and which storage backend was selected at startup.
func Health(repo repository.ProdutorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"backend": repo.Kind(),
		})
	}
}
