package services

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"carpoolreminders/internal/domain"
)

// NormalizePhone returns raw in E.164 form. Numbers without a country code are
// read in defaultRegion (e.g. "US").
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty phone number", domain.ErrInvalidInput)
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", fmt.Errorf("%w: parse phone %q: %v", domain.ErrInvalidInput, raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: phone %q is not a valid number", domain.ErrInvalidInput, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
