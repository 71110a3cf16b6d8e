package geometry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gmath "github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

const eps = 1e-5

func generate(t *testing.T, kind Kind, p Params) *Data {
	t.Helper()
	d, err := Generate(kind, p)
	require.NoError(t, err)
	return d
}

func pos(v mesh.Vertex) gmath.Vec3 {
	return gmath.Vec3FromArray(v.Position)
}

// uniqueCentroid averages distinct positions, so seam and pole copies
// count once.
func uniqueCentroid(vertices []mesh.Vertex) gmath.Vec3 {
	seen := make(map[[3]int32]bool)
	var sum gmath.Vec3
	for _, v := range vertices {
		key := [3]int32{
			quantize(v.Position[0]),
			quantize(v.Position[1]),
			quantize(v.Position[2]),
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		sum = sum.Add(pos(v))
	}
	return sum.Scale(1 / float32(len(seen)))
}

func quantize(f float32) int32 {
	return int32(math32.Floor(f*1e4 + 0.5))
}

// assertOutwardCCW checks every triangle's geometric normal agrees with
// both its vertex normals and the direction away from the origin.
func assertOutwardCCW(t *testing.T, d *Data) {
	t.Helper()
	require.Equal(t, mesh.Triangles, d.Topology)
	for i := 0; i < len(d.Indices); i += 3 {
		a := d.Vertices[d.Indices[i]]
		b := d.Vertices[d.Indices[i+1]]
		c := d.Vertices[d.Indices[i+2]]

		geo := pos(b).Sub(pos(a)).Cross(pos(c).Sub(pos(a)))
		require.Greater(t, geo.Length(), float32(0), "degenerate triangle %d", i/3)

		avgNormal := gmath.Vec3FromArray(a.Normal).
			Add(gmath.Vec3FromArray(b.Normal)).
			Add(gmath.Vec3FromArray(c.Normal))
		centroid := pos(a).Add(pos(b)).Add(pos(c))
		assert.Greater(t, geo.Dot(avgNormal), float32(0), "triangle %d faces against its normals", i/3)
		assert.Greater(t, geo.Dot(centroid), float32(0), "triangle %d faces inward", i/3)
	}
}

func assertSurfaceAttributes(t *testing.T, d *Data) {
	t.Helper()
	for i, v := range d.Vertices {
		n := gmath.Vec3FromArray(v.Normal).Length()
		assert.InDelta(t, 1, n, eps, "vertex %d normal length", i)
		for _, uv := range v.TexCoord {
			assert.GreaterOrEqual(t, uv, float32(0), "vertex %d texcoord", i)
			assert.LessOrEqual(t, uv, float32(1), "vertex %d texcoord", i)
		}
	}
}

func assertIndicesInRange(t *testing.T, d *Data) {
	t.Helper()
	assert.Zero(t, len(d.Indices)%d.Topology.Stride())
	for _, idx := range d.Indices {
		require.Less(t, int(idx), len(d.Vertices))
	}
}

func TestCountsMatchGenerate(t *testing.T) {
	params := []Params{
		{Longitude: 3, Latitude: 2, Radial: 3, Caps: true},
		{Longitude: 3, Latitude: 2, Radial: 3, Caps: false},
		{Longitude: 7, Latitude: 5, Radial: 11, Caps: true},
		DefaultParams(),
	}
	for _, kind := range Kinds() {
		for _, p := range params {
			t.Run(fmt.Sprintf("%s/%+v", kind, p), func(t *testing.T) {
				nv, ni, err := Counts(kind, p)
				require.NoError(t, err)

				d := generate(t, kind, p)
				assert.Len(t, d.Vertices, nv)
				assert.Len(t, d.Indices, ni)
				assertIndicesInRange(t, d)
			})
		}
	}
}

func TestCountFormulas(t *testing.T) {
	tests := []struct {
		kind   Kind
		p      Params
		nv, ni int
	}{
		{Cuboid, Params{}, 24, 36},
		{Quad, Params{}, 4, 6},
		{Axes, Params{}, 6, 6},
		{Sphere, Params{Longitude: 3, Latitude: 2}, 10, 18},
		{Sphere, Params{Longitude: 8, Latitude: 4}, 43, 144},
		{Cylinder, Params{Radial: 4}, 10, 24},
		{Cylinder, Params{Radial: 4, Caps: true}, 20, 48},
		{Cone, Params{Radial: 4}, 9, 12},
		{Cone, Params{Radial: 4, Caps: true}, 14, 24},
	}
	for _, tt := range tests {
		nv, ni, err := Counts(tt.kind, tt.p)
		require.NoError(t, err)
		assert.Equal(t, tt.nv, nv, "%s vertices", tt.kind)
		assert.Equal(t, tt.ni, ni, "%s indices", tt.kind)
	}
}

func TestResolutionMinimums(t *testing.T) {
	tests := []struct {
		kind  Kind
		p     Params
		field string
	}{
		{Sphere, Params{Longitude: 2, Latitude: 2}, "longitude"},
		{Sphere, Params{Longitude: 3, Latitude: 1}, "latitude"},
		{Sphere, Params{Longitude: 0, Latitude: 0}, "longitude"},
		{Cylinder, Params{Radial: 2}, "radial"},
		{Cone, Params{Radial: -1}, "radial"},
	}
	for _, tt := range tests {
		_, err := Generate(tt.kind, tt.p)
		var pe *ParamError
		require.True(t, errors.As(err, &pe), "%s %+v: got %v", tt.kind, tt.p, err)
		assert.Equal(t, tt.field, pe.Field)
		assert.Equal(t, tt.kind, pe.Kind)

		_, _, err = Counts(tt.kind, tt.p)
		assert.Error(t, err)
	}

	// Families without resolution accept anything.
	for _, kind := range []Kind{Cuboid, Quad, Axes} {
		_, err := Generate(kind, Params{})
		assert.NoError(t, err)
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := Generate(Kind(42), DefaultParams())
	assert.Error(t, err)
}

func TestCuboid(t *testing.T) {
	d := generate(t, Cuboid, Params{})
	assertOutwardCCW(t, d)
	assertSurfaceAttributes(t, d)

	assert.InDelta(t, 0, uniqueCentroid(d.Vertices).Length(), eps)
	for _, v := range d.Vertices {
		for _, c := range v.Position {
			assert.InDelta(t, 0.5, math32.Abs(c), eps)
		}
	}

	// Four vertices per face, each sharing the face normal.
	for f := 0; f < 6; f++ {
		n := d.Vertices[f*4].Normal
		for k := 1; k < 4; k++ {
			assert.Equal(t, n, d.Vertices[f*4+k].Normal)
		}
	}
}

func TestQuad(t *testing.T) {
	d := generate(t, Quad, Params{})
	assertSurfaceAttributes(t, d)
	assert.InDelta(t, 0, uniqueCentroid(d.Vertices).Length(), eps)

	for _, v := range d.Vertices {
		assert.Equal(t, [3]float32{0, 0, 1}, v.Normal)
		assert.Zero(t, v.Position[2])
	}
	assert.Equal(t, [2]float32{0, 0}, d.Vertices[0].TexCoord)
	assert.Equal(t, [2]float32{1, 1}, d.Vertices[2].TexCoord)

	// Quad triangles point along +Z.
	for i := 0; i < len(d.Indices); i += 3 {
		a, b, c := pos(d.Vertices[d.Indices[i]]), pos(d.Vertices[d.Indices[i+1]]), pos(d.Vertices[d.Indices[i+2]])
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Z, float32(0))
	}
}

func TestSphere(t *testing.T) {
	for _, p := range []Params{{Longitude: 3, Latitude: 2}, {Longitude: 5, Latitude: 3}, {Longitude: 24, Latitude: 12}} {
		t.Run(fmt.Sprintf("%dx%d", p.Longitude, p.Latitude), func(t *testing.T) {
			d := generate(t, Sphere, p)
			assertOutwardCCW(t, d)
			assertSurfaceAttributes(t, d)
			assert.InDelta(t, 0, uniqueCentroid(d.Vertices).Length(), eps)

			for i, v := range d.Vertices {
				assert.InDelta(t, 1, pos(v).Length(), eps, "vertex %d not on the unit sphere", i)
				assert.Equal(t, v.Position, v.Normal)
			}
		})
	}
}

func TestSpherePoleRingsShareDistinctUV(t *testing.T) {
	p := Params{Longitude: 4, Latitude: 3}
	d := generate(t, Sphere, p)

	south := d.Vertices[:p.Longitude]
	north := d.Vertices[len(d.Vertices)-p.Longitude:]
	for _, pole := range [][]mesh.Vertex{south, north} {
		us := map[float32]bool{}
		for _, v := range pole {
			assert.Equal(t, pole[0].Position, v.Position)
			us[v.TexCoord[0]] = true
		}
		assert.Len(t, us, p.Longitude)
	}
	assert.Equal(t, [3]float32{0, 0, -1}, south[0].Position)
	assert.Equal(t, [3]float32{0, 0, 1}, north[0].Position)
}

func TestSphereSeamWrapsTexture(t *testing.T) {
	p := Params{Longitude: 6, Latitude: 4}
	d := generate(t, Sphere, p)

	// First interior ring follows the south pole ring.
	ring := d.Vertices[p.Longitude : p.Longitude+p.Longitude+1]
	first, seam := ring[0], ring[p.Longitude]
	assert.Equal(t, first.Position, seam.Position)
	assert.Equal(t, float32(0), first.TexCoord[0])
	assert.Equal(t, float32(1), seam.TexCoord[0])
}

func TestCylinder(t *testing.T) {
	for _, caps := range []bool{true, false} {
		t.Run(fmt.Sprintf("caps=%v", caps), func(t *testing.T) {
			d := generate(t, Cylinder, Params{Radial: 9, Caps: caps})
			assertOutwardCCW(t, d)
			assertSurfaceAttributes(t, d)
			assert.InDelta(t, 0, uniqueCentroid(d.Vertices).Length(), eps)

			for _, v := range d.Vertices {
				assert.InDelta(t, 0.5, math32.Abs(v.Position[2]), eps)
			}
		})
	}
}

func TestCylinderSideAndCapsDoNotShareVertices(t *testing.T) {
	p := Params{Radial: 6, Caps: true}
	d := generate(t, Cylinder, p)
	side := 2 * (p.Radial + 1)

	for i, v := range d.Vertices {
		if i < side {
			assert.Zero(t, v.Normal[2], "side normal %d should be radial", i)
		} else {
			assert.InDelta(t, 1, math32.Abs(v.Normal[2]), eps, "cap normal %d should be flat", i)
		}
	}
}

func TestCone(t *testing.T) {
	for _, caps := range []bool{true, false} {
		t.Run(fmt.Sprintf("caps=%v", caps), func(t *testing.T) {
			d := generate(t, Cone, Params{Radial: 8, Caps: caps})
			assertOutwardCCW(t, d)
			assertSurfaceAttributes(t, d)

			// One apex point against a full base ring can never average to
			// z=0 inside [-0.5, 0.5], so the cone is centred by its bounds
			// and only the XY centroid is checked.
			var lo, hi gmath.Vec3
			for _, v := range d.Vertices {
				p := pos(v)
				lo = gmath.V3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
				hi = gmath.V3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
			}
			center := lo.Add(hi).Scale(0.5)
			assert.InDelta(t, 0, center.Length(), eps)

			c := uniqueCentroid(d.Vertices)
			assert.InDelta(t, 0, c.X, eps)
			assert.InDelta(t, 0, c.Y, eps)
		})
	}
}

func TestConeSlantNormals(t *testing.T) {
	d := generate(t, Cone, Params{Radial: 16})
	// Slant of a 0.5 radius, unit-height cone: normal z = 0.5/sqrt(1.25).
	want := 0.5 / math32.Sqrt(1.25)
	for _, v := range d.Vertices {
		assert.InDelta(t, want, v.Normal[2], eps)
	}
}

func TestAxes(t *testing.T) {
	d := generate(t, Axes, Params{})
	assert.Equal(t, mesh.Lines, d.Topology)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, d.Indices)

	ends := [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, end := range ends {
		assert.Equal(t, [3]float32{}, d.Vertices[2*i].Position)
		assert.Equal(t, end, d.Vertices[2*i+1].Position)
	}
	for _, v := range d.Vertices {
		assert.Equal(t, [3]float32{}, v.Normal)
		assert.Equal(t, [2]float32{}, v.TexCoord)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, kind := range Kinds() {
		a := generate(t, kind, DefaultParams())
		b := generate(t, kind, DefaultParams())
		assert.Equal(t, a, b, kind.String())
	}
}

func TestGenerateConcurrently(t *testing.T) {
	want := generate(t, Sphere, DefaultParams())
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := Generate(Sphere, DefaultParams())
			if err == nil && len(got.Indices) != len(want.Indices) {
				err = fmt.Errorf("got %d indices, want %d", len(got.Indices), len(want.Indices))
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}
