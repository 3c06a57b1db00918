package parser

import "regexp"

var (
	// SDelete renames a file through AAAA.AAA ... ZZZZ.ZZZ before
	// deleting it. RE2 has no back references so the shape is
	// matched here and the repeated letter is checked separately.
	placeholder_shape = regexp.MustCompile(`^[A-Z]+\.[A-Z]{3}$`)
)

// HasPlaceholderPattern reports whether name is one uppercase letter
// repeated one or more times, a dot, then the same letter exactly
// three times (i.e. ^([A-Z])\1*\.\1{3}$).
func HasPlaceholderPattern(name string) bool {
	if !placeholder_shape.MatchString(name) {
		return false
	}

	letter := name[0]
	for i := 0; i < len(name); i++ {
		if name[i] != '.' && name[i] != letter {
			return false
		}
	}
	return true
}
