package speech

import "strings"

// The speech service silently produces no audio at all when the response contains
// characters it can't speak. Only add substitutions for characters confirmed to do this.
var DefaultSubstitutions = []string{
	"&", "and",
}

var DefaultSanitizer = NewSanitizer(DefaultSubstitutions...)

// Sanitizer swaps out text the speech service can't speak
type Sanitizer struct {
	replacer *strings.Replacer
}

// NewSanitizer takes old, new pairs in the same way as strings.NewReplacer
func NewSanitizer(substitutions ...string) *Sanitizer {
	return &Sanitizer{
		replacer: strings.NewReplacer(substitutions...),
	}
}

func (s *Sanitizer) Sanitize(text string) string {
	return s.replacer.Replace(text)
}

func Sanitize(text string) string {
	return DefaultSanitizer.Sanitize(text)
}
