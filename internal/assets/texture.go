package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var textureExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// DecodeTexture decodes any registered image format into tightly packed
// RGBA pixels, ready for upload.
func DecodeTexture(r io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, format, nil
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, format, nil
}

// LoadTexture reads and decodes the texture at path.
func LoadTexture(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer file.Close()

	rgba, _, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return rgba, nil
}

// ScaleTexture resamples src to the given size with bilinear filtering.
func ScaleTexture(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FitTexture shrinks src so neither side exceeds maxSize, keeping its aspect
// ratio. Textures that already fit are returned unchanged.
func FitTexture(src *image.RGBA, maxSize int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return src
	}
	if w >= h {
		return ScaleTexture(src, maxSize, max(1, h*maxSize/w))
	}
	return ScaleTexture(src, max(1, w*maxSize/h), maxSize)
}

// IsTexturePath reports whether path has an extension DecodeTexture understands.
func IsTexturePath(path string) bool {
	return slices.Contains(textureExtensions, strings.ToLower(filepath.Ext(path)))
}

// DiscoverTextures walks root and returns the slash-separated paths, relative
// to root, of every texture file found, in lexical order.
func DiscoverTextures(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsTexturePath(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover textures in %s: %w", root, err)
	}
	log.Printf("Discovered %d textures under %s", len(out), root)
	return out, nil
}
