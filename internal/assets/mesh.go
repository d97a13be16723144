package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per vertex: position, normal, uv.
const VertexStride = 8

// Builtin mesh paths resolved without touching the filesystem.
const (
	BuiltinCube = "builtin/cube"
	BuiltinQuad = "builtin/quad"
)

// Mesh is an interleaved, non-indexed triangle list.
type Mesh struct {
	Vertices []float32
}

// Count returns the number of vertices in m.
func (m *Mesh) Count() int {
	return len(m.Vertices) / VertexStride
}

func (m *Mesh) add(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.Vertices = append(m.Vertices,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		uv[0], uv[1],
	)
}

// Builtin returns the mesh registered under a builtin path.
func Builtin(path string) (*Mesh, bool) {
	switch path {
	case BuiltinCube:
		return CubeMesh(), true
	case BuiltinQuad:
		return QuadMesh(), true
	}
	return nil, false
}

// CubeMesh returns a unit cube centred on the origin.
func CubeMesh() *Mesh {
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	m := &Mesh{Vertices: make([]float32, 0, 36*VertexStride)}
	for _, f := range faces {
		centre := f.normal.Mul(0.5)
		corner := func(su, sv float32) mgl32.Vec3 {
			return centre.Add(f.u.Mul(su * 0.5)).Add(f.v.Mul(sv * 0.5))
		}
		bl, br := corner(-1, -1), corner(1, -1)
		tr, tl := corner(1, 1), corner(-1, 1)

		m.add(bl, f.normal, mgl32.Vec2{0, 0})
		m.add(br, f.normal, mgl32.Vec2{1, 0})
		m.add(tr, f.normal, mgl32.Vec2{1, 1})
		m.add(tr, f.normal, mgl32.Vec2{1, 1})
		m.add(tl, f.normal, mgl32.Vec2{0, 1})
		m.add(bl, f.normal, mgl32.Vec2{0, 0})
	}
	return m
}

// QuadMesh returns a unit square in the XY plane facing +Z.
func QuadMesh() *Mesh {
	n := mgl32.Vec3{0, 0, 1}
	m := &Mesh{}
	m.add(mgl32.Vec3{-0.5, -0.5, 0}, n, mgl32.Vec2{0, 0})
	m.add(mgl32.Vec3{0.5, -0.5, 0}, n, mgl32.Vec2{1, 0})
	m.add(mgl32.Vec3{0.5, 0.5, 0}, n, mgl32.Vec2{1, 1})
	m.add(mgl32.Vec3{0.5, 0.5, 0}, n, mgl32.Vec2{1, 1})
	m.add(mgl32.Vec3{-0.5, 0.5, 0}, n, mgl32.Vec2{0, 1})
	m.add(mgl32.Vec3{-0.5, -0.5, 0}, n, mgl32.Vec2{0, 0})
	return m
}

// LoadMesh resolves path as a builtin mesh or reads it as a Wavefront OBJ file.
func LoadMesh(path string) (*Mesh, error) {
	if m, ok := Builtin(path); ok {
		return m, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %s: %w", path, err)
	}
	defer file.Close()

	m, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	return m, nil
}

type objCorner struct {
	v, vt, vn int // resolved 0-based, -1 if absent
}

// ParseOBJ reads positions, normals, texture coordinates and polygon faces
// from OBJ text. Polygons are fan-triangulated and faces without normals
// get a flat face normal. Materials, groups and smoothing are ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		uvs       []mgl32.Vec2
		mesh      = &Mesh{}
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v", "vn":
			vals, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v := mgl32.Vec3{vals[0], vals[1], vals[2]}
			if fields[0] == "v" {
				positions = append(positions, v)
			} else {
				if v.Len() > 0 {
					v = v.Normalize()
				}
				normals = append(normals, v)
			}
		case "vt":
			vals, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			uvs = append(uvs, mgl32.Vec2{vals[0], vals[1]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c, err := parseCorner(f, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				tri := [3]objCorner{corners[0], corners[i], corners[i+1]}
				flat := positions[tri[1].v].Sub(positions[tri[0].v]).
					Cross(positions[tri[2].v].Sub(positions[tri[0].v]))
				if flat.Len() > 0 {
					flat = flat.Normalize()
				}
				for _, c := range tri {
					n := flat
					if c.vn >= 0 {
						n = normals[c.vn]
					}
					var uv mgl32.Vec2
					if c.vt >= 0 {
						uv = uvs[c.vt]
					}
					mesh.add(positions[c.v], n, uv)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if mesh.Count() == 0 {
		return nil, fmt.Errorf("obj has no faces")
	}
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", fields[i], err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner handles v, v/vt, v//vn and v/vt/vn with 1-based or negative
// (relative) indices.
func parseCorner(s string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(s, "/")
	c := objCorner{v: -1, vt: -1, vn: -1}

	var err error
	if c.v, err = resolveIndex(parts[0], nv); err != nil || c.v < 0 {
		return c, fmt.Errorf("bad vertex index in %q", s)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], nvt); err != nil || c.vt < 0 {
			return c, fmt.Errorf("bad uv index in %q", s)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], nvn); err != nil || c.vn < 0 {
			return c, fmt.Errorf("bad normal index in %q", s)
		}
	}
	return c, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return -1, fmt.Errorf("index %d out of range", i)
}
