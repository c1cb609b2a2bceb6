package iconset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ico "github.com/sergeymakinen/go-ico"

	"icoforge/pkg/config"
	"icoforge/pkg/icon"
)

func writeSourcePNG(t *testing.T, path string, size int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.png")
	outDir := filepath.Join(dir, "icons")
	writeSourcePNG(t, srcPath, 512)

	cfg := config.DefaultConfig()
	cfg.Source = srcPath
	cfg.OutDir = outDir
	cfg.AppName = "demo"

	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// 4 PNGs + icns + ico, no syso by default.
	if len(m.Artifacts) != 6 {
		t.Fatalf("got %d artifacts, want 6", len(m.Artifacts))
	}
	for _, a := range m.Artifacts {
		if _, err := os.Stat(a.Path); err != nil {
			t.Errorf("artifact %s missing on disk: %v", a.Name, err)
		}
		if a.Kind == "syso" {
			t.Errorf("syso written without write_syso")
		}
	}

	t.Run("png ladder dimensions", func(t *testing.T) {
		for _, entry := range pngLadder {
			file, err := os.Open(filepath.Join(outDir, entry.name))
			if err != nil {
				t.Fatalf("open %s: %v", entry.name, err)
			}
			img, err := png.Decode(file)
			file.Close()
			if err != nil {
				t.Fatalf("decode %s: %v", entry.name, err)
			}
			if b := img.Bounds(); b.Dx() != entry.size || b.Dy() != entry.size {
				t.Errorf("%s is %dx%d, want %dx%d", entry.name, b.Dx(), b.Dy(), entry.size, entry.size)
			}
		}
	})

	t.Run("ico ladder", func(t *testing.T) {
		file, err := os.Open(filepath.Join(outDir, "icon.ico"))
		if err != nil {
			t.Fatalf("open icon.ico: %v", err)
		}
		defer file.Close()
		images, err := ico.DecodeAll(file)
		if err != nil {
			t.Fatalf("decode icon.ico: %v", err)
		}
		if len(images) != len(icon.DefaultSizes) {
			t.Errorf("icon.ico holds %d images, want %d", len(images), len(icon.DefaultSizes))
		}
	})

	t.Run("manifest", func(t *testing.T) {
		loaded, err := LoadManifest(filepath.Join(outDir, ManifestName))
		if err != nil {
			t.Fatalf("LoadManifest: %v", err)
		}
		if loaded.App != "demo" || loaded.Source != srcPath {
			t.Errorf("manifest header mismatch: %+v", loaded)
		}
		if len(loaded.Artifacts) != len(m.Artifacts) {
			t.Errorf("manifest lists %d artifacts, want %d", len(loaded.Artifacts), len(m.Artifacts))
		}
	})
}

func TestGenerate_WithSyso(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.png")
	writeSourcePNG(t, srcPath, 256)

	cfg := config.DefaultConfig()
	cfg.Source = srcPath
	cfg.OutDir = filepath.Join(dir, "icons")
	cfg.WriteSyso = true

	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	found := false
	for _, a := range m.Artifacts {
		if a.Kind != "syso" {
			continue
		}
		found = true
		if !strings.HasSuffix(a.Path, SysoName) {
			t.Errorf("syso path %q does not end in %q", a.Path, SysoName)
		}
		info, err := os.Stat(a.Path)
		if err != nil {
			t.Fatalf("stat syso: %v", err)
		}
		if info.Size() == 0 {
			t.Error("syso file is empty")
		}
	}
	if !found {
		t.Error("no syso artifact in manifest")
	}
}

func TestGenerate_MissingSource(t *testing.T) {
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Source = filepath.Join(dir, "nope.png")
	cfg.OutDir = filepath.Join(dir, "icons")

	if _, err := Generate(cfg); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := os.Stat(filepath.Join(dir, "icons")); !os.IsNotExist(err) {
		t.Error("output directory created despite missing source")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	m := &Manifest{
		App:    "demo",
		Source: "icon.png",
		Artifacts: []Artifact{
			{Name: "32x32.png", Kind: "png", Size: 32, Path: "icons/32x32.png"},
			{Name: "icon.ico", Kind: "ico", Path: "icons/icon.ico"},
		},
	}

	if err := SaveManifest(path, m); err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}
	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if loaded.App != m.App || loaded.Source != m.Source || len(loaded.Artifacts) != 2 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Artifacts[0] != m.Artifacts[0] {
		t.Errorf("artifact mismatch: %+v", loaded.Artifacts[0])
	}
}

func TestReadManifest_EmptyArtifacts(t *testing.T) {
	loaded, err := ReadManifest(strings.NewReader(`{"source": "icon.png"}`))
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if loaded.Artifacts == nil {
		t.Error("Artifacts should be non-nil")
	}
}
