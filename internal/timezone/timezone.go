package timezone

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

var ErrInvalidDateTime = errors.New("invalid date/time")

// layouts aceitos sem offset; interpretados no fuso informado.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDateTime aceita RFC 3339 (com offset) ou data/hora local no fuso tz.
func ParseDateTime(value string, tz string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDateTime
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	loc := Location(tz)
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDateTime
}

// ParseDate interpreta YYYY-MM-DD como meia-noite no fuso tz.
func ParseDate(value string, tz string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), Location(tz))
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}
