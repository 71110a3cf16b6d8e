package geometry

import gmath "github.com/Faultbox/glprim/pkg/math"

// face is one side of the cuboid: outward normal and the tangent that
// maps to texture u. The v tangent is normal x u so (u, v, normal) is
// right-handed and corners listed in (s,t) order wind CCW from outside.
type face struct {
	normal gmath.Vec3
	u      gmath.Vec3
}

var cuboidFaces = [6]face{
	{normal: gmath.V3(1, 0, 0), u: gmath.V3(0, 1, 0)},
	{normal: gmath.V3(-1, 0, 0), u: gmath.V3(0, -1, 0)},
	{normal: gmath.V3(0, 1, 0), u: gmath.V3(-1, 0, 0)},
	{normal: gmath.V3(0, -1, 0), u: gmath.V3(1, 0, 0)},
	{normal: gmath.V3(0, 0, 1), u: gmath.V3(1, 0, 0)},
	{normal: gmath.V3(0, 0, -1), u: gmath.V3(-1, 0, 0)},
}

var faceCorners = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func (d *Data) cuboid() {
	for _, f := range cuboidFaces {
		d.plane(f, f.normal.Scale(0.5))
	}
}

func (d *Data) quad() {
	d.plane(cuboidFaces[4], gmath.Vec3{})
}

// plane appends a unit square centred on center, facing f.normal.
func (d *Data) plane(f face, center gmath.Vec3) {
	v := f.normal.Cross(f.u)
	b := d.base()
	for _, st := range faceCorners {
		p := center.
			Add(f.u.Scale(st[0] - 0.5)).
			Add(v.Scale(st[1] - 0.5))
		d.add(p.Array(), f.normal.Array(), st)
	}
	d.tri(b, b+1, b+2)
	d.tri(b, b+2, b+3)
}
