// Package iconset generates the complete icon artifact set a desktop
// application bundle needs: a PNG size ladder, a macOS ICNS, a Windows
// ICO and, optionally, a linkable resource object for Windows builds.
package iconset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"

	"icoforge/pkg/config"
	"icoforge/pkg/icon"
)

// ManifestName is the manifest file written next to the artifacts.
const ManifestName = "icons.json"

// pngLadder lists the PNG artifacts bundlers conventionally look for.
var pngLadder = []struct {
	name string
	size int
}{
	{"32x32.png", 32},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"icon.png", 512},
}

// Generate converts cfg.Source into the full artifact set under
// cfg.OutDir and returns the manifest describing what was written.
// The manifest itself is saved as icons.json in the same directory.
func Generate(cfg config.Config) (*Manifest, error) {
	src, err := imaging.Open(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	m := &Manifest{
		App:       cfg.AppName,
		Source:    cfg.Source,
		Artifacts: make([]Artifact, 0, len(pngLadder)+3),
	}

	for _, entry := range pngLadder {
		out := filepath.Join(cfg.OutDir, entry.name)
		resized := imaging.Resize(src, entry.size, entry.size, imaging.Lanczos)
		if err := imaging.Save(resized, out); err != nil {
			return nil, fmt.Errorf("save %s: %w", out, err)
		}
		m.Artifacts = append(m.Artifacts, Artifact{Name: entry.name, Kind: "png", Size: entry.size, Path: out})
	}

	icnsPath := filepath.Join(cfg.OutDir, "icon.icns")
	if err := writeICNS(icnsPath, src); err != nil {
		return nil, err
	}
	m.Artifacts = append(m.Artifacts, Artifact{Name: "icon.icns", Kind: "icns", Path: icnsPath})

	icoPath := filepath.Join(cfg.OutDir, "icon.ico")
	if err := icon.GenerateICO(cfg.Source, icoPath); err != nil {
		return nil, err
	}
	m.Artifacts = append(m.Artifacts, Artifact{Name: "icon.ico", Kind: "ico", Path: icoPath})

	if cfg.WriteSyso {
		sysoPath := filepath.Join(cfg.OutDir, SysoName)
		if err := WriteSyso(sysoPath, icon.RenderVariants(src, icon.DefaultSizes)); err != nil {
			return nil, err
		}
		m.Artifacts = append(m.Artifacts, Artifact{Name: SysoName, Kind: "syso", Path: sysoPath})
	}

	if err := SaveManifest(filepath.Join(cfg.OutDir, ManifestName), m); err != nil {
		return nil, err
	}
	return m, nil
}

func writeICNS(path string, src image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := icns.Encode(file, src); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
