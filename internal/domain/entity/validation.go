package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Field length limits, counted in runes.
const (
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinTitleLength        = 5
	MaxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between
// MinMagazineNameLength and MaxMagazineNameLength characters.
func ValidateMagazineName(name string) error {
	return validateLength("name", name, MinMagazineNameLength, MaxMagazineNameLength)
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title is between
// MinTitleLength and MaxTitleLength characters.
func ValidateTitle(title string) error {
	return validateLength("title", title, MinTitleLength, MaxTitleLength)
}

func validateLength(field, value string, lo, hi int) error {
	n := text.CountRunes(value)
	if n < lo || n > hi {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", field, lo, hi),
		}
	}
	return nil
}
