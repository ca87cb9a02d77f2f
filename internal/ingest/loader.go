// Package ingest reads the materialized producer artifacts for a run. Every
// load is tolerant: a missing or malformed artifact degrades to an empty
// value so the pipeline can always finish with a well-defined, thinner
// result.
package ingest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"pta/internal/model"
)

// Producer artifact filenames inside the artifacts directory.
const (
	ClaimsFile    = "claims.json"
	HowtoFile     = "target_howto.json"
	CoverageFile  = "coverage.json"
	FileIndexFile = "index.json"
	ProfileFile   = "execution_profile.json"
)

// Loader reads producer artifacts from one artifacts directory.
type Loader struct {
	dir string
	log *zap.Logger
}

// NewLoader creates a loader for the given artifacts directory.
func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

// Claims loads the claims artifact; a missing or broken file is an empty set.
func (l *Loader) Claims() *model.ClaimSet {
	var cs model.ClaimSet
	l.readJSON(ClaimsFile, &cs)
	return &cs
}

// Howto loads the operator-manual artifact.
func (l *Loader) Howto() *model.Howto {
	var h model.Howto
	l.readJSON(HowtoFile, &h)
	return &h
}

// Coverage loads the scan-coverage artifact.
func (l *Loader) Coverage() *model.Coverage {
	var c model.Coverage
	l.readJSON(CoverageFile, &c)
	return &c
}

// FileIndex loads the ordered list of repo-relative paths.
func (l *Loader) FileIndex() []string {
	var index []string
	l.readJSON(FileIndexFile, &index)
	return index
}

// Profile loads the optional execution profile; nil when absent.
func (l *Loader) Profile() *model.ExecutionProfile {
	var p model.ExecutionProfile
	if !l.readJSON(ProfileFile, &p) {
		return nil
	}
	return &p
}

func (l *Loader) readJSON(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.log.Warn("unreadable producer artifact", zap.String("artifact", name), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		l.log.Warn("malformed producer artifact", zap.String("artifact", name), zap.Error(err))
		return false
	}
	return true
}
