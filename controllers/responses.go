package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/forms"
	"github.com/moto-workshop/mws-dashboard-api/services"
)

// respondAuthError answers a request whose token could not be read from the
// context
func respondAuthError(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": err.Error(),
		},
	})
}

// respondBadRequest answers a malformed request
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "BAD_REQUEST",
			"message": message,
		},
	})
}

// respondBackendError translates a backend client failure. Rejections keep
// the backend's status and message; transport failures become 502 with a
// generic user-facing text.
func respondBackendError(c *gin.Context, err error) {
	var httpErr *services.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BACKEND_ERROR",
				"message": httpErr.Message,
			},
		})
		return
	}

	var netErr *services.NetworkError
	if errors.As(err, &netErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BACKEND_UNREACHABLE",
				"message": "No se pudo conectar con el servidor",
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "La solicitud no pudo ser procesada",
		},
	})
}

// respondFormError answers a failed form submission. Validation failures list
// the field-level messages and never reach the backend; anything else is a
// backend failure.
func respondFormError(c *gin.Context, err error) {
	if ve := forms.GetValidationErrors(err); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Los datos del formulario no son validos",
				"details": ve.Errors,
			},
		})
		return
	}
	respondBackendError(c, err)
}
