package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStudentNumber(t *testing.T) {
	assert.True(t, IsValidStudentNumber("123456789"))
	assert.True(t, IsValidStudentNumber("000000001"))

	assert.False(t, IsValidStudentNumber("12345678"))   // too short
	assert.False(t, IsValidStudentNumber("1234567890")) // too long
	assert.False(t, IsValidStudentNumber("12345678a"))
	assert.False(t, IsValidStudentNumber(" 123456789"))
	assert.False(t, IsValidStudentNumber(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@jsj.ac.za"))
	assert.True(t, IsValidEmail("first.last+tag@example.co"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidYearOfStudy(t *testing.T) {
	for _, year := range YearsOfStudy {
		assert.True(t, IsValidYearOfStudy(year), year)
	}

	assert.False(t, IsValidYearOfStudy("fifth year"))
	assert.False(t, IsValidYearOfStudy("First Year"))
	assert.False(t, IsValidYearOfStudy(""))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))

	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank("  x  "))
}
