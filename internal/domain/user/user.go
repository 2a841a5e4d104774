package user

import "strings"

type Type string

const (
	TypeClient Type = "client"
	TypeBarber Type = "barber"
	TypeAdmin  Type = "admin"
)

func (t Type) Valid() bool {
	switch t {
	case TypeClient, TypeBarber, TypeAdmin:
		return true
	}
	return false
}

// ResolveType aplica o padrão client quando o tipo não foi informado.
func ResolveType(raw string) (Type, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return TypeClient, true
	}
	t := Type(raw)
	return t, t.Valid()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
