package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifica um erro de negócio para o mapeamento HTTP.
type Kind int

const (
	KindBusiness Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
	KindStorage
)

// FieldError descreve um campo que falhou na validação.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type BusinessError struct {
	Code   string
	Kind   Kind
	Fields []FieldError
	Err    error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Kind: KindBusiness}
}

func ErrValidation(code string, fields ...FieldError) error {
	return BusinessError{Code: code, Kind: KindValidation, Fields: fields}
}

func ErrAuth(code string) error {
	return BusinessError{Code: code, Kind: KindAuthentication}
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrConflict(code string) error {
	return BusinessError{Code: code, Kind: KindConflict}
}

// ErrStorage embrulha uma falha do banco. Já classificados passam direto.
func ErrStorage(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return BusinessError{Code: "database_error", Kind: KindStorage, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf devolve a classificação; erros desconhecidos contam como storage.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStorage
}

// IsUniqueViolation reconhece violação de unique index no Postgres (23505),
// no tradutor do GORM e no SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
