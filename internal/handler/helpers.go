package handler

import (
	"net/http"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller must return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// validateStruct runs validator tags on an already-populated request struct
// (used directly by the multipart registration path).
func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Faltam campos obrigatórios."))
		return false
	}
	return true
}
