package iconset

import (
	"encoding/json"
	"io"
	"os"
)

// Artifact is one generated file in the set.
type Artifact struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int    `json:"size,omitempty"` // pixel edge, 0 for container formats
	Path string `json:"path"`
}

// Manifest is the JSON shape for a generated icon set (one file,
// multiple artifacts).
type Manifest struct {
	App       string     `json:"app,omitempty"`
	Source    string     `json:"source"`
	Artifacts []Artifact `json:"artifacts"`
}

func SaveManifest(path string, m *Manifest) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteManifest(file, m, true)
}

func LoadManifest(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadManifest(file)
}

func WriteManifest(w io.Writer, m *Manifest, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(m)
}

func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	// Ensure non-nil artifacts
	if m.Artifacts == nil {
		m.Artifacts = make([]Artifact, 0)
	}
	return &m, nil
}
