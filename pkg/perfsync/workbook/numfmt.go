package workbook

import (
	"regexp"
	"strings"
)

// builtInDateFormats are the built-in number format ids that render a date.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	57: true, 58: true,
}

var (
	quotedText   = regexp.MustCompile(`"[^"]*"`)
	bracketToken = regexp.MustCompile(`\[[^\]]*\]`)
	escapedChar  = regexp.MustCompile(`\\.`)
)

// isDateFormat reports whether a number format renders its value as a date.
// Pure time formats (h:mm:ss) are not dates.
func isDateFormat(numFmt int, custom *string) bool {
	if custom == nil || *custom == "" {
		return builtInDateFormats[numFmt]
	}
	code := strings.ToLower(*custom)
	// only the positive section decides
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}
	code = quotedText.ReplaceAllString(code, "")
	code = bracketToken.ReplaceAllString(code, "")
	code = escapedChar.ReplaceAllString(code, "")
	return strings.ContainsAny(code, "yd")
}
