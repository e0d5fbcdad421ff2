// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidPassword requires at least 6 characters.
func IsValidPassword(password string) bool {
	return len(password) >= 6
}

// IsValidName requires at least 2 characters once trimmed.
func IsValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// IsValidEventTitle requires at least 3 characters once trimmed.
func IsValidEventTitle(title string) bool {
	return len(strings.TrimSpace(title)) >= 3
}

// IsValidEventDescription requires at least 10 characters once trimmed.
func IsValidEventDescription(description string) bool {
	return len(strings.TrimSpace(description)) >= 10
}

func IsValidEventDate(date time.Time) bool {
	return !date.IsZero()
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
