// Package export turns the pixels of a drawing surface into a PNG, either as a data URL
// or as a file. A missing surface is not an error: nothing is produced.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultName is the file name used when none is configured.
const DefaultName = "my-3d-emoji.png"

const dataURLPrefix = "data:image/png;base64,"

// Source is a drawing surface. Snapshot returns nil when the surface is absent (not
// mounted yet, already released).
type Source interface {
	Snapshot() image.Image
}

// snapshot reads src, treating a nil source like an absent surface.
func snapshot(src Source) image.Image {
	if src == nil {
		return nil
	}
	return src.Snapshot()
}

// EncodePNG writes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL returns the surface as a "data:image/png;base64,..." URL. ok is false, with no
// error reported anywhere, when the surface is absent or cannot be encoded.
func DataURL(src Source) (url string, ok bool) {
	img := snapshot(src)
	if img == nil {
		return "", false
	}
	data, err := EncodePNG(img)
	if err != nil {
		return "", false
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data), true
}

// Save writes the surface as a PNG file named name under dir, creating dir if needed,
// and returns the written path. When the surface is absent it writes nothing and
// returns "", nil.
func Save(src Source, dir, name string) (savedPath string, err error) {
	img := snapshot(src)
	if img == nil {
		return "", nil
	}
	return SaveImage(img, dir, name)
}

// SaveImage writes img as a PNG file named name under dir.
func SaveImage(img image.Image, dir, name string) (savedPath string, err error) {
	name = sanitizeFilename(name)
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	savedPath = filepath.Join(dir, name)
	if err := imgio.Save(savedPath, img, imgio.PNGEncoder()); err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("export: %w", err)
	}
	return savedPath, nil
}

// Readback fixes up pixels read back from a GPU render target: OpenGL rows come bottom
// first, so the image is flipped; it is then scaled to size x size when size > 0 and
// differs from the source.
func Readback(img image.Image, size int) image.Image {
	if img == nil {
		return nil
	}
	out := transform.FlipV(img)
	b := out.Bounds()
	if size > 0 && (b.Dx() != size || b.Dy() != size) {
		out = transform.Resize(out, size, size, transform.Linear)
	}
	return out
}

// Image is a Source that always holds a snapshot, e.g. a frame captured by the 3D host.
type Image struct {
	Img image.Image
}

// Snapshot implements Source.
func (i Image) Snapshot() image.Image { return i.Img }

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultName
	}
	name = safeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
