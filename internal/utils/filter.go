package utils

import (
	"unicode"
	"unicode/utf8"
)

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/' || r == '\''
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars reports runes that are neither letters, digits nor
// separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive reports strings of three or more copies of a single rune,
// such as "aaa".
func IsRepetitive(s string) bool {
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// IsValidInput checks if a prefix is worth predicting for. It rejects empty
// or malformed strings, pure numbers, special characters and repetitions.
func IsValidInput(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	if IsOnlyNumbers(s) || ContainsSpecialChars(s) || IsRepetitive(s) {
		return false
	}
	return true
}
