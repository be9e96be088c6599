// Package textfilter keeps dialogue transcript lines within the
// configured content rating.
package textfilter

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replacements maps words unsuitable for PG13-and-lower transcripts to
// tamer alternatives.
var replacements = map[string]string{
	"fuck":     "fudge",
	"shit":     "shoot",
	"damn":     "dang",
	"hell":     "heck",
	"ass":      "butt",
	"bitch":    "jerk",
	"bastard":  "jerk",
	"crap":     "crud",
	"asshole":  "jerk",
	"goddamn":  "gosh-dang",
	"bullshit": "baloney",
	"prick":    "jerk",
}

// Filter replaces profanity in transcript lines.
type Filter struct {
	regexes map[string]*regexp.Regexp
	caser   cases.Caser
}

// New creates a filter with patterns pre-compiled per word.
func New() *Filter {
	f := &Filter{
		regexes: make(map[string]*regexp.Regexp, len(replacements)),
		caser:   cases.Title(language.English),
	}
	for word := range replacements {
		f.regexes[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return f
}

// Clean replaces each flagged word, preserving all-upper, all-lower and
// title casing of the original.
func (f *Filter) Clean(line string) string {
	result := line
	for word, re := range f.regexes {
		replacement := replacements[word]
		result = re.ReplaceAllStringFunc(result, func(match string) string {
			return f.matchCase(match, replacement)
		})
	}
	return result
}

// Flagged reports whether the line contains any filtered word.
func (f *Filter) Flagged(line string) bool {
	for _, re := range f.regexes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (f *Filter) matchCase(original, replacement string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(replacement)
	case original == f.caser.String(strings.ToLower(original)):
		return f.caser.String(replacement)
	default:
		return strings.ToLower(replacement)
	}
}

// ShouldFilter determines if transcripts should be filtered for the rating
func ShouldFilter(rating string) bool {
	rating = strings.ToUpper(strings.TrimSpace(rating))
	switch rating {
	case "G", "PG", "PG13", "PG-13":
		return true
	default:
		return false
	}
}
