package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// --------------------------------------------------
// Datas recebidas pela API, interpretadas no fuso da aplicação
// --------------------------------------------------

func parseDateTimeField(field, value, tz string) (time.Time, error) {
	t, err := timezone.ParseDateTime(value, tz)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date",
			httperr.FieldError{Field: field, Rule: "datetime"})
	}
	return t, nil
}

// parseDayOrDateTime aceita YYYY-MM-DD além dos formatos de data/hora.
func parseDayOrDateTime(field, value, tz string) (time.Time, error) {
	if t, err := timezone.ParseDate(value, tz); err == nil {
		return t, nil
	}
	return parseDateTimeField(field, value, tz)
}
