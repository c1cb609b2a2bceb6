package iconset

import (
	"fmt"
	"image"
	"os"

	"github.com/tc-hib/winres"
)

// SysoName matches the object file name the Go toolchain links into
// windows/amd64 builds automatically.
const SysoName = "rsrc_windows_amd64.syso"

// WriteSyso writes a COFF resource object carrying the icon group, so a
// plain `go build` embeds the application icon on Windows.
func WriteSyso(path string, variants []image.Image) error {
	res, err := winres.NewIconFromImages(variants)
	if err != nil {
		return fmt.Errorf("build icon resource: %w", err)
	}

	rs := winres.ResourceSet{}
	if err := rs.SetIcon(winres.Name("APP"), res); err != nil {
		return fmt.Errorf("set icon resource: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := rs.WriteObject(out, winres.ArchAMD64); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
