package grammar

import (
	"regexp"
	"strconv"
)

// Keywords of the WhileProc language. Keywords are matched by the
// statement-level parse function only; in expression position they are
// ordinary identifiers.
var keywords = []string{"proc", "if", "else", "while", "print"}

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	numberPattern     = regexp.MustCompile(`^(\d+\.\d+|\d+)$`)
)

// IsIdentifier is a predicate: does token have the form of an identifier?
func IsIdentifier(token string) bool {
	return identifierPattern.MatchString(token)
}

// IsNumber is a predicate: is token a numeric literal?
// Numbers are either digits or digits '.' digits.
func IsNumber(token string) bool {
	return numberPattern.MatchString(token)
}

// Keywords returns the keywords of WhileProc.
func Keywords() []string {
	kw := make([]string, len(keywords))
	copy(kw, keywords)
	return kw
}

func numberValue(token string) float64 {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil { // cannot happen for tokens accepted by IsNumber
		tracer().Errorf("malformed number: %q", token)
		return 0
	}
	return f
}
