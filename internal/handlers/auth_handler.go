package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

type AuthHandler struct {
	errorResponder

	authenticate *ucUser.Authenticate
}

func NewAuthHandler(authenticate *ucUser.Authenticate, exposeDetails bool) *AuthHandler {
	return &AuthHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		authenticate:   authenticate,
	}
}

// Login verifica e-mail e senha. Não emite token: só diz se as credenciais conferem.
func (h *AuthHandler) Login(c *gin.Context) {
	var req ucUser.AuthenticateInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authenticate.Execute(c.Request.Context(), req)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindAuthentication {
			c.JSON(http.StatusUnauthorized, gin.H{
				"authenticated": false,
				"error":         ucUser.CodeInvalidCredentials,
				"message":       messageFor(ucUser.CodeInvalidCredentials),
			})
			return
		}
		h.fail(c, err)
		return
	}

	httpresp.OK(c, res)
}
