package geometry

import "github.com/chewxy/math32"

// sphere samples a unit sphere in latitude rings from the south pole
// (j = 0) to the north pole (j = lat). Interior rings carry lon+1
// vertices, the last repeating longitude 0 with u = 1 so textures wrap.
// Each pole ring carries lon vertices at the same position with u at the
// middle of their segment; pole bands are fans.
func (d *Data) sphere(lon, lat int) {
	ring := make([]uint32, lat+1)

	for j := 0; j <= lat; j++ {
		ring[j] = d.base()
		v := float32(j) / float32(lat)

		if j == 0 || j == lat {
			z := float32(-1)
			if j == lat {
				z = 1
			}
			p := [3]float32{0, 0, z}
			for i := 0; i < lon; i++ {
				d.add(p, p, [2]float32{(float32(i) + 0.5) / float32(lon), v})
			}
			continue
		}

		phi := -math32.Pi/2 + math32.Pi*v
		sinPhi, cosPhi := math32.Sincos(phi)
		for i := 0; i <= lon; i++ {
			u := float32(i) / float32(lon)
			theta := 2 * math32.Pi * u
			if i == lon {
				theta = 0
			}
			sinTheta, cosTheta := math32.Sincos(theta)
			p := [3]float32{cosPhi * cosTheta, cosPhi * sinTheta, sinPhi}
			d.add(p, p, [2]float32{u, v})
		}
	}

	for j := 0; j < lat; j++ {
		lo, hi := ring[j], ring[j+1]
		for i := uint32(0); i < uint32(lon); i++ {
			switch {
			case j == 0:
				// South fan: pole, next, current.
				d.tri(lo+i, hi+i+1, hi+i)
			case j == lat-1:
				// North fan: current, next, pole.
				d.tri(lo+i, lo+i+1, hi+i)
			default:
				a, b := lo+i, lo+i+1
				c, e := hi+i+1, hi+i
				d.tri(a, b, c)
				d.tri(a, c, e)
			}
		}
	}
}
