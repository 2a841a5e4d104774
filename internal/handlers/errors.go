package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var messages = map[string]string{
	"invalid_request":            "Dados inválidos.",
	"invalid_json":               "JSON inválido.",
	"invalid_id":                 "Identificador inválido.",
	"invalid_date":               "Data ou hora inválida.",
	"invalid_status":             "Status inválido.",
	"invalid_user_type":          "Tipo de usuário inválido.",
	"invalid_email_domain":       "O domínio do e-mail informado não parece ser válido.",
	"user_is_not_barber":         "O usuário informado não é barbeiro.",
	"scheduling_barber_mismatch": "O agendamento não pertence a este barbeiro.",

	"invalid_credentials": "E-mail ou senha inválidos.",

	"user_not_found":        "Usuário não encontrado.",
	"client_not_found":      "Cliente não encontrado.",
	"barber_not_found":      "Barbeiro não encontrado.",
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",

	domain.CodeSlotUnavailable: domain.UnavailableMessage,
	"email_already_exists":     "E-mail já cadastrado.",
	"invalid_state":            "O agendamento não pode mudar de status.",

	"database_error": "Erro ao acessar o banco de dados.",
	"internal_error": "Erro interno.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// errorResponder centraliza a tradução erro -> HTTP.
type errorResponder struct {
	exposeDetails bool
}

func (r errorResponder) fail(c *gin.Context, err error) {
	var be httperr.BusinessError
	code := "internal_error"
	if errors.As(err, &be) {
		code = be.Code
	}

	status := httperr.StatusOf(err)
	switch status {
	case http.StatusBadRequest:
		httperr.Invalid(c, code, messageFor(code), be.Fields)
	case http.StatusInternalServerError:
		_ = c.Error(err)
		httperr.Storage(c, code, messageFor(code), err, r.exposeDetails)
	default:
		httperr.Write(c, status, code, messageFor(code))
	}
}

// ------------------------------
// Helpers de request
// ------------------------------

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_json", messageFor("invalid_json"))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", messageFor("invalid_id"))
		return 0, false
	}
	return uint(id), true
}
