package loaders

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Mesh is an indexed triangle mesh
type Mesh struct {
	Name     string
	Vertices []core.Vec3
	Faces    [][3]int // Vertex indices, counter-clockwise
}

// LoadMesh loads a mesh, choosing the format from the file extension
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gltf", ".glb":
		return LoadGLTF(path)
	case ".ply":
		return LoadPLY(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
}

// Validate checks that every face references an existing vertex
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", i, v, len(m.Vertices))
			}
		}
	}
	return nil
}

// Bounds returns the axis aligned bounding box of the vertices
func (m *Mesh) Bounds() (min, max core.Vec3) {
	if len(m.Vertices) == 0 {
		return core.Vec3{}, core.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = core.NewVec3(math.Min(min.X, v.X), math.Min(min.Y, v.Y), math.Min(min.Z, v.Z))
		max = core.NewVec3(math.Max(max.X, v.X), math.Max(max.Y, v.Y), math.Max(max.Z, v.Z))
	}
	return min, max
}

// Transform scales every vertex about the origin, then translates it
func (m *Mesh) Transform(scale float64, offset core.Vec3) {
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Multiply(scale).Add(offset)
	}
}

// Fit uniformly scales and moves the mesh so its largest extent equals size
// and the bottom centre of its bounding box sits at base
func (m *Mesh) Fit(base core.Vec3, size float64) {
	min, max := m.Bounds()
	extent := max.Subtract(min).MaxComponent()
	if extent <= 0 {
		return
	}
	scale := size / extent
	bottom := core.NewVec3((min.X+max.X)/2, min.Y, (min.Z+max.Z)/2)
	m.Transform(scale, base.Subtract(bottom.Multiply(scale)))
}

// Polygons converts every face to a polygon with the given surface
func (m *Mesh) Polygons(surface geometry.Surface) []geometry.Polygon {
	polygons := make([]geometry.Polygon, 0, len(m.Faces))
	for _, f := range m.Faces {
		polygons = append(polygons, geometry.NewPolygon(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]], surface))
	}
	return polygons
}

// triangulate splits a convex polygon into a fan of triangles
func triangulate(indices []int) [][3]int {
	if len(indices) < 3 {
		return nil
	}
	faces := make([][3]int, 0, len(indices)-2)
	for i := 1; i+1 < len(indices); i++ {
		faces = append(faces, [3]int{indices[0], indices[i], indices[i+1]})
	}
	return faces
}
