package validators

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// MaxMoney é o maior valor que cabe em numeric(10,2).
var MaxMoney = decimal.RequireFromString("99999999.99")

// Money arredonda v para centavos, como o banco guarda, e confere a faixa.
func Money(field string, v decimal.Decimal) (decimal.Decimal, []httperr.FieldError) {
	v = v.Round(2)

	switch {
	case v.IsNegative():
		return v, []httperr.FieldError{{Field: field, Rule: "gte"}}
	case v.GreaterThan(MaxMoney):
		return v, []httperr.FieldError{{Field: field, Rule: "lte"}}
	}
	return v, nil
}
