package flashcard

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CategoryGeneral = "general"
	CategoryCoding  = "coding"
)

// AllowedCategories is the fixed taxonomy new cards must belong to.
var AllowedCategories = []string{CategoryGeneral, CategoryCoding}

// NormalizeCategory lower-cases c and reports whether it is an allowed category.
func NormalizeCategory(c string) (string, bool) {
	// A Caser is stateful, so one is built per call.
	normalized := cases.Lower(language.Und).String(c)
	for _, allowed := range AllowedCategories {
		if normalized == allowed {
			return normalized, true
		}
	}
	return normalized, false
}
