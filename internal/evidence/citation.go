package evidence

import (
	"regexp"
	"strconv"
	"strings"
)

// citationRe is the only citation grammar accepted from producers:
// "path:N" or "path:N-M" with 1-based line numbers.
var citationRe = regexp.MustCompile(`^([^:]+):(\d+)(?:-(\d+))?$`)

// Citation is a parsed "path:N[-M]" reference, before ground-truth lookup.
type Citation struct {
	Path      string
	LineStart int
	LineEnd   int
}

// ParseCitation parses a loose citation string. It returns false for any
// other shape; callers must treat such input as unparsable rather than
// fabricating evidence from it.
func ParseCitation(s string) (Citation, bool) {
	m := citationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Citation{}, false
	}
	start, err := strconv.Atoi(m[2])
	if err != nil || start < 1 {
		return Citation{}, false
	}
	end := start
	if m[3] != "" {
		end, err = strconv.Atoi(m[3])
		if err != nil || end < 1 {
			return Citation{}, false
		}
	}
	return Citation{Path: m[1], LineStart: start, LineEnd: end}, true
}
