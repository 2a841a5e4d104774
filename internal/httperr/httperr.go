package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Invalid responde 400 com a lista de campos inválidos.
func Invalid(c *gin.Context, code, message string, fields []FieldError) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}

// Storage responde 500. A mensagem crua do banco só vai em details quando expose=true.
func Storage(c *gin.Context, code, message string, err error, expose bool) {
	body := HTTPError{Code: code, Message: message}
	if expose && err != nil {
		var be BusinessError
		if errors.As(err, &be) && be.Err != nil {
			body.Details = be.Err.Error()
		} else {
			body.Details = err.Error()
		}
	}
	c.JSON(http.StatusInternalServerError, body)
}

// StatusOf traduz o Kind para o status HTTP.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
