// Package icon converts a raster source image into a multi-resolution
// Windows ICO container.
package icon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
)

// DefaultSizes is the resolution ladder Windows expects in an application
// icon, smallest first. The first entry is the primary image.
var DefaultSizes = []int{16, 32, 48, 256}

// Decode reads and decodes the raster image at path.
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// RenderVariants resamples src into one square variant per requested size
// using Lanczos3. Non-square sources are squashed, not letterboxed.
func RenderVariants(src image.Image, sizes []int) []image.Image {
	variants := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		variants = append(variants, resize.Resize(uint(size), uint(size), src, resize.Lanczos3))
	}
	return variants
}

// EncodeICO writes variants into a single ICO container, in slice order.
func EncodeICO(w io.Writer, variants []image.Image) error {
	if len(variants) == 0 {
		return fmt.Errorf("encode ico: no variants")
	}
	return ico.EncodeAll(w, variants)
}

// GenerateICO converts the image at sourcePath into a multi-resolution ICO
// at destPath, overwriting any existing file there. The container always
// holds the DefaultSizes ladder regardless of the source dimensions.
func GenerateICO(sourcePath, destPath string) error {
	src, err := Decode(sourcePath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, RenderVariants(src, DefaultSizes)); err != nil {
		return fmt.Errorf("encode %s: %w", destPath, err)
	}

	if err := os.WriteFile(destPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}
