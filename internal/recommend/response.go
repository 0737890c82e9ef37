package recommend

import (
	"strings"
)

// #region response

// FromResponse extracts recommendation lines from generated text: lines
// opening with a numbered prefix ("1." through "9.") or a dash, prefix
// stripped. Everything else in the response is discarded.
func FromResponse(response string) []string {
	var recs []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case len(line) >= 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.':
			if rec := strings.TrimSpace(line[2:]); rec != "" {
				recs = append(recs, rec)
			}
		case strings.HasPrefix(line, "-"):
			if rec := strings.TrimSpace(line[1:]); rec != "" {
				recs = append(recs, rec)
			}
		}
	}
	return recs
}

// #endregion response
