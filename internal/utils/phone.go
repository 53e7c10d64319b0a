package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var mobilePattern = regexp.MustCompile(`^8\d{8,11}$`)

// NormalizePhone validates an Indonesian mobile number and returns it in
// E.164 form (+62...). Accepts "+62", "62" and "0" prefixes as well as
// spaces and dashes. Validation happens before any network call so a typo
// fails fast on the client.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	switch {
	case strings.HasPrefix(stripped, "62"):
		stripped = stripped[2:]
	case strings.HasPrefix(stripped, "0"):
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid Indonesian mobile number")
	}

	return "+62" + stripped, nil
}

// MaskPhone hides the middle digits of a phone number for log output.
func MaskPhone(phone string) string {
	if len(phone) < 7 {
		return "***"
	}
	return phone[:5] + strings.Repeat("*", len(phone)-8) + phone[len(phone)-3:]
}
