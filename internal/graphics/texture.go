package graphics

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"mini-scene/internal/assets"
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextureSize caps the longest side of uploaded scene textures.
const MaxTextureSize = 2048

// UploadTexture copies decoded pixels into a new 2D texture
func UploadTexture(rgba *image.RGBA) scene.Handle {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	size := rgba.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return scene.Handle(texture)
}

// DeleteTextures releases every texture registered in s
func DeleteTextures(s *scene.Scene) {
	for _, t := range s.Textures() {
		name := uint32(t.Handle)
		gl.DeleteTextures(1, &name)
	}
}

// LoadSceneTextures decodes, uploads and registers textures found under
// root. Each texture is keyed by its root-relative path. Files that fail to
// decode are skipped and logged; the count of registered textures is
// returned.
func LoadSceneTextures(s *scene.Scene, root string) (int, error) {
	defer profiling.Track("graphics.LoadSceneTextures")()

	paths, err := assets.DiscoverTextures(root)
	if err != nil {
		return 0, fmt.Errorf("load scene textures: %w", err)
	}

	loaded := 0
	for _, p := range paths {
		rgba, err := assets.LoadTexture(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			log.Printf("skipping texture %s: %v", p, err)
			continue
		}
		s.AddTexture(p, UploadTexture(assets.FitTexture(rgba, MaxTextureSize)))
		loaded++
	}
	log.Printf("Loaded %d textures from %s", loaded, root)
	return loaded, nil
}
