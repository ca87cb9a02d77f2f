package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Claims(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, ClaimsFile, `{
		"mode": "github",
		"run_id": "run-9",
		"claims": [
			{"id": "c1", "section": "auth", "statement": "sessions expire", "confidence": 0.8,
			 "evidence": ["src/session.py:14", {"path": "src/session.py", "line_start": 20, "line_end": 22}]}
		]
	}`)

	cs := NewLoader(dir, zap.NewNop()).Claims()

	assert.Equal(t, "github", cs.Mode)
	assert.Equal(t, "run-9", cs.RunID)
	require.Len(t, cs.Claims, 1)
	claim := cs.Claims[0]
	require.Len(t, claim.Evidence, 2)
	assert.Equal(t, "src/session.py:14", claim.Evidence[0].Raw)
	require.NotNil(t, claim.Evidence[1].Anchor)
	assert.Equal(t, 20, claim.Evidence[1].Anchor.LineStart)
}

func TestLoader_MissingArtifactsDegradeToEmpty(t *testing.T) {
	l := NewLoader(t.TempDir(), zap.NewNop())

	assert.Empty(t, l.Claims().Claims)
	assert.Empty(t, l.Howto().InstallSteps)
	assert.Empty(t, l.Coverage().Mode)
	assert.Empty(t, l.FileIndex())
	assert.Nil(t, l.Profile())
}

func TestLoader_MalformedArtifactsDegradeToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, ClaimsFile, `{not json`)
	writeArtifact(t, dir, HowtoFile, `[]`)
	writeArtifact(t, dir, FileIndexFile, `{"files": "wrong shape"}`)
	writeArtifact(t, dir, ProfileFile, `broken`)

	l := NewLoader(dir, zap.NewNop())

	assert.Empty(t, l.Claims().Claims)
	assert.Empty(t, l.Howto().InstallSteps)
	assert.Empty(t, l.FileIndex())
	assert.Nil(t, l.Profile())
}

func TestLoader_NonArrayClaimsFieldYieldsEmptySet(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, ClaimsFile, `{"claims": "oops", "mode": "local"}`)

	cs := NewLoader(dir, zap.NewNop()).Claims()

	assert.Empty(t, cs.Claims)
	assert.Equal(t, "local", cs.Mode)
}

func TestLoader_FileIndex(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, FileIndexFile, `["src/app.py", "infra/main.tf"]`)

	assert.Equal(t, []string{"src/app.py", "infra/main.tf"}, NewLoader(dir, zap.NewNop()).FileIndex())
}

func TestLoader_Profile(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, ProfileFile, `{
		"run_command": "python app.py",
		"language": "python",
		"port_binding": {"port": 5000, "evidence": ["src/app.py:3"]}
	}`)

	p := NewLoader(dir, zap.NewNop()).Profile()

	require.NotNil(t, p)
	assert.Equal(t, "python app.py", p.RunCommand)
	require.NotNil(t, p.PortBinding)
	assert.Equal(t, 5000, p.PortBinding.Port)
	require.Len(t, p.PortBinding.Evidence, 1)
	assert.Equal(t, "src/app.py:3", p.PortBinding.Evidence[0].Raw)
}
