package assets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mini-scene/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(m *assets.Mesh, i int) (pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	v := m.Vertices[i*assets.VertexStride:]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, mgl32.Vec2{v[6], v[7]}
}

func TestCubeMesh(t *testing.T) {
	m := assets.CubeMesh()
	require.Equal(t, 36, m.Count())

	for tri := 0; tri < 12; tri++ {
		a, n, _ := vertexAt(m, tri*3)
		b, _, _ := vertexAt(m, tri*3+1)
		c, _, _ := vertexAt(m, tri*3+2)

		// Counter-clockwise winding seen from outside.
		winding := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.True(t, winding.ApproxEqual(n), "triangle %d winding %v normal %v", tri, winding, n)

		for _, p := range []mgl32.Vec3{a, b, c} {
			for k := 0; k < 3; k++ {
				assert.InDelta(t, 0.5, abs(p[k]), 0.5+1e-6)
			}
			assert.InDelta(t, 0.5, p.Dot(n), 1e-6, "vertex must lie on its face plane")
		}
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestBuiltin(t *testing.T) {
	q, ok := assets.Builtin(assets.BuiltinQuad)
	require.True(t, ok)
	assert.Equal(t, 6, q.Count())

	_, ok = assets.Builtin("builtin/teapot")
	assert.False(t, ok)

	m, err := assets.LoadMesh(assets.BuiltinCube)
	require.NoError(t, err)
	assert.Equal(t, 36, m.Count())
}

func TestParseOBJ(t *testing.T) {
	src := `# a quad with uvs and normals
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 2
f 1/1/1 2/2/1 3/3/1 4/4/1
`
	m, err := assets.ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 6, m.Count())

	pos, n, uv := vertexAt(m, 4)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, pos)
	assert.True(t, n.ApproxEqual(mgl32.Vec3{0, 0, 1}), "normals are normalised, got %v", n)
	assert.Equal(t, mgl32.Vec2{1, 1}, uv)
}

func TestParseOBJFlatNormalsAndNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 0 0 1
v 1 0 0
f -3 -2 -1
`
	m, err := assets.ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, m.Count())

	_, n, uv := vertexAt(m, 0)
	assert.True(t, n.ApproxEqual(mgl32.Vec3{0, 1, 0}), "got %v", n)
	assert.Equal(t, mgl32.Vec2{}, uv)
}

func TestParseOBJZeroNormal(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 0
f 1//1 2//1 3//1
`
	m, err := assets.ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, m.Count())

	for i := 0; i < m.Count(); i++ {
		_, n, _ := vertexAt(m, i)
		assert.Equal(t, mgl32.Vec3{}, n, "vertex %d", i)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := map[string]string{
		"no faces":      "v 0 0 0\n",
		"short face":    "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad index":     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
		"bad number":    "v 0 zero 0\n",
		"missing coord": "vt 0.5\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := assets.ParseOBJ(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadMeshFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	m, err := assets.LoadMesh(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Count())

	_, err = assets.LoadMesh(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
