package assets_test

import (
	"image/color"
	"testing"

	"mini-scene/internal/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLabel(t *testing.T) {
	short, err := assets.RenderLabel("12", 16, color.White)
	require.NoError(t, err)
	long, err := assets.RenderLabel("12 objects, 3 models", 16, color.White)
	require.NoError(t, err)

	assert.Greater(t, long.Bounds().Dx(), short.Bounds().Dx())
	assert.Equal(t, short.Bounds().Dy(), long.Bounds().Dy())

	inked := 0
	for i := 3; i < len(long.Pix); i += 4 {
		if long.Pix[i] > 0 {
			inked++
		}
	}
	assert.Greater(t, inked, 0, "expected some glyph coverage")
}

func TestRenderLabelEmpty(t *testing.T) {
	img, err := assets.RenderLabel("", 12, color.White)
	require.NoError(t, err)
	for i := 3; i < len(img.Pix); i += 4 {
		assert.Zero(t, img.Pix[i])
	}
}
