package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pta/internal/model"
)

// PackFileName is the persisted pack document, versioned in the name so
// consumers can pin a schema.
const PackFileName = "evidence_pack.v1.json"

// SavePack writes the pack document under dir, creating it if needed.
func SavePack(p *model.EvidencePack, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pack: %w", err)
	}
	path := filepath.Join(dir, PackFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write pack: %w", err)
	}
	return path, nil
}

// LoadPack reads a previously persisted pack document.
func LoadPack(path string) (*model.EvidencePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	var p model.EvidencePack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pack: %w", err)
	}
	return &p, nil
}
