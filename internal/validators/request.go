package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// reporta o nome do campo como aparece no JSON
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Result é o resultado da validação de uma requisição: ok ou a lista de falhas.
type Result struct {
	Fields []httperr.FieldError
}

func (r Result) OK() bool {
	return len(r.Fields) == 0
}

// Err converte a falha em erro de validação (400); nil quando ok.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return httperr.ErrValidation("invalid_request", r.Fields...)
}

// Struct valida v pelas tags `validate`.
func Struct(v any) Result {
	err := instance().Struct(v)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Fields: []httperr.FieldError{{Field: "body", Rule: "invalid"}}}
	}

	fields := make([]httperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, httperr.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
		})
	}
	return Result{Fields: fields}
}
