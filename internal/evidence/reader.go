package evidence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"pta/internal/model"
)

// Reader resolves repo-relative line references against the checked-out
// source tree. One Reader belongs to one run: its line cache never outlives
// the run that created it.
type Reader struct {
	root  string
	cache *gocache.Cache // path -> []string, nil when caching is disabled
}

// NewReader creates a reader rooted at the checked-out tree.
func NewReader(root string, cfg model.CacheConfig) *Reader {
	var c *gocache.Cache
	if cfg.Enabled {
		c = gocache.New(cfg.TTL, cfg.CleanupInterval)
	}
	return &Reader{root: root, cache: c}
}

// Line returns the trimmed literal text of the 1-based line n in path. A
// missing file or out-of-range line yields a descriptive placeholder rather
// than an error; the placeholder is hashed like any other snippet so that
// repeated runs stay deterministic.
func (r *Reader) Line(path string, n int) string {
	if n > 0 {
		if lines, ok := r.fileLines(path); ok && n <= len(lines) {
			return strings.TrimSpace(lines[n-1])
		}
	}
	return fmt.Sprintf("(line %d from %s)", n, path)
}

// Resolve parses a loose citation and anchors it to ground truth. It returns
// nil for unparsable input.
func (r *Reader) Resolve(citation string) *model.EvidenceAnchor {
	c, ok := ParseCitation(citation)
	if !ok {
		return nil
	}
	anchor := MakeAnchor(c.Path, c.LineStart, c.LineEnd, r.Line(c.Path, c.LineStart))
	return &anchor
}

func (r *Reader) fileLines(path string) ([]string, bool) {
	if r.cache != nil {
		if v, found := r.cache.Get(path); found {
			lines := v.([]string)
			return lines, lines != nil
		}
	}
	lines := r.readFile(path)
	if r.cache != nil {
		r.cache.Set(path, lines, gocache.DefaultExpiration)
	}
	return lines, lines != nil
}

func (r *Reader) readFile(path string) []string {
	full := filepath.Join(r.root, filepath.FromSlash(path))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}
