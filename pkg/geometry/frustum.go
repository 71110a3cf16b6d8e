package geometry

import "github.com/chewxy/math32"

const (
	frustumHalfHeight   = 0.5
	frustumBottomRadius = 0.5
)

// frustum builds a unit-height truncated cone along Z with bottom radius
// 0.5 at z = -0.5 and the given top radius at z = +0.5. A top radius of
// zero gives a cone whose apex ring holds one vertex per segment.
// Side normals follow the slant of the generating line, caps are separate
// fans with flat normals so the two never blend.
func (d *Data) frustum(n int, topRadius float32, caps bool) {
	rb, rt := float32(frustumBottomRadius), topRadius
	slope := rb - rt // height is 1

	sideNormal := func(theta float32) [3]float32 {
		s, c := math32.Sincos(theta)
		l := math32.Sqrt(1 + slope*slope)
		return [3]float32{c / l, s / l, slope / l}
	}

	bottom := d.base()
	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		theta := angle(i, n)
		s, c := math32.Sincos(theta)
		d.add([3]float32{rb * c, rb * s, -frustumHalfHeight}, sideNormal(theta), [2]float32{u, 0})
	}

	top := d.base()
	apex := rt == 0
	if apex {
		for i := 0; i < n; i++ {
			u := (float32(i) + 0.5) / float32(n)
			d.add([3]float32{0, 0, frustumHalfHeight}, sideNormal(2*math32.Pi*u), [2]float32{u, 1})
		}
	} else {
		for i := 0; i <= n; i++ {
			u := float32(i) / float32(n)
			theta := angle(i, n)
			s, c := math32.Sincos(theta)
			d.add([3]float32{rt * c, rt * s, frustumHalfHeight}, sideNormal(theta), [2]float32{u, 1})
		}
	}

	for i := uint32(0); i < uint32(n); i++ {
		a, b := bottom+i, bottom+i+1
		if apex {
			d.tri(a, b, top+i)
			continue
		}
		c, e := top+i+1, top+i
		d.tri(a, b, c)
		d.tri(a, c, e)
	}

	if !caps {
		return
	}
	d.disk(n, rb, -frustumHalfHeight)
	if !apex {
		d.disk(n, rt, frustumHalfHeight)
	}
}

// disk appends a cap fan: centre plus n rim vertices. z < 0 faces down.
func (d *Data) disk(n int, r, z float32) {
	up := z > 0
	normal := [3]float32{0, 0, 1}
	if !up {
		normal[2] = -1
	}

	center := d.base()
	d.add([3]float32{0, 0, z}, normal, [2]float32{0.5, 0.5})
	for i := 0; i < n; i++ {
		s, c := math32.Sincos(angle(i, n))
		v := 0.5 + 0.5*s
		if !up {
			// Mirror so the texture reads correctly when seen from below.
			v = 0.5 - 0.5*s
		}
		d.add([3]float32{r * c, r * s, z}, normal, [2]float32{0.5 + 0.5*c, v})
	}

	for i := uint32(0); i < uint32(n); i++ {
		cur := center + 1 + i
		next := center + 1 + (i+1)%uint32(n)
		if up {
			d.tri(center, cur, next)
		} else {
			d.tri(center, next, cur)
		}
	}
}

// angle returns the longitude of segment boundary i; i == n wraps to 0
// so seam vertices share exact positions.
func angle(i, n int) float32 {
	if i == n {
		return 0
	}
	return 2 * math32.Pi * float32(i) / float32(n)
}
