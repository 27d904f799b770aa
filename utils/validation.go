// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidatePrice checks a non-negative decimal string such as "45" or "45.00"
func ValidatePrice(price string) bool {
	match, _ := regexp.MatchString(`^\d{1,8}(\.\d{1,2})?$`, strings.TrimSpace(price))
	return match
}

// AvatarInitials derives up to two uppercase initials from a client name,
// used when a testimonial has no avatar image.
func AvatarInitials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	initials := strings.ToUpper(fields[0][:1])
	if len(fields) > 1 {
		initials += strings.ToUpper(fields[len(fields)-1][:1])
	}
	return initials
}
