package validation

import (
	"regexp"
	"strings"
)

// symbolPattern is the closed character set a ticker symbol may use. Symbols
// are interpolated into SQL, so nothing outside this set may reach a query.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,20}$`)

// IsValidSymbol reports whether symbol may be used in a gold table query.
func IsValidSymbol(symbol string) bool {
	return symbolPattern.MatchString(symbol)
}

// IsCSVFilename reports whether filename carries a .csv extension, in any case.
func IsCSVFilename(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

// ClampLimit bounds a row limit to [1, max].
func ClampLimit(limit, max int) int {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
