// Package recommend produces baseline recommendations per health band and
// validates recommendation sets against the governance rules that fired.
package recommend

import (
	"strings"
	"unicode"
)

// #region keywords

// stopwords contains common Portuguese connective words excluded from topic
// matching.
var stopwords = map[string]bool{
	"para": true, "com": true, "que": true,
	"deve": true, "quando": true, "requer": true,
}

// keywords extracts the topic words used for coverage matching: lowercase
// words longer than four letters, stopwords removed.
func keywords(topic string) []string {
	words := strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	var out []string
	for _, w := range words {
		if len([]rune(w)) <= 4 || stopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// covered reports whether any recommendation mentions any keyword of the
// topic. A topic that yields no keywords is never covered.
func covered(topic string, recommendations []string) bool {
	kws := keywords(topic)
	if len(kws) == 0 {
		return false
	}
	for _, rec := range recommendations {
		lower := strings.ToLower(rec)
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// #endregion keywords
