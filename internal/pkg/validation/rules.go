package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// Student number pattern - 9 digits
	StudentNumberPattern = `^\d{9}$`

	// Password min length
	PasswordMinLength = 6
)

// Accepted values for a student's year of study.
var YearsOfStudy = []string{"first year", "second year", "third year", "fourth year", "postgrad"}

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	StudentNumber *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidStudentNumber reports whether the value is a 9-digit student number.
func IsValidStudentNumber(value string) bool {
	return CompiledPatterns.StudentNumber.MatchString(value)
}

// IsValidYearOfStudy reports whether the value is one of the accepted
// year-of-study labels.
func IsValidYearOfStudy(value string) bool {
	for _, year := range YearsOfStudy {
		if value == year {
			return true
		}
	}
	return false
}

// IsBlank reports whether the value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
