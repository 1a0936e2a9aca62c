package generator

import (
	"strings"
	"unicode"
)

// words splits a type name into its camel case words. Acronyms
// are kept together (AGMAGleason -> AGMA, Gleason).
func words(name string) []string {
	var r []string

	runes := []rune(name)
	start := 0
	for i := 1; i < len(runes); i++ {
		c := runes[i]
		if !unicode.IsUpper(c) {
			continue
		}
		p := runes[i-1]
		if unicode.IsLower(p) || unicode.IsDigit(p) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
			r = append(r, string(runes[start:i]))
			start = i
		}
	}
	return append(r, string(runes[start:]))
}

// ConstName returns the name of the type name constant.
func ConstName(typ string) string {
	return "TYPE_" + strings.ToUpper(strings.Join(words(typ), "_"))
}

// FileName returns the name of the file generated for a type.
func FileName(typ string) string {
	return strings.ToLower(strings.Join(words(typ), "_")) + ".go"
}

// CastHelper returns the name of the cast helper type.
func CastHelper(typ string) string {
	return typ + "Cast"
}

// CastMethod returns the name of the cast helper method for a target.
func CastMethod(target string) string {
	return "As" + target
}
