package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes m as a Wavefront OBJ object named name. Triangle meshes
// carry positions, texture coordinates and normals; line meshes only
// positions.
func (m *Mesh) WriteOBJ(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	for _, v := range m.vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}

	if m.topology == Lines {
		for i := 0; i < len(m.indices); i += 2 {
			fmt.Fprintf(bw, "l %d %d\n", m.indices[i]+1, m.indices[i+1]+1)
		}
		return bw.Flush()
	}

	for _, v := range m.vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range m.vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i < len(m.indices); i += 3 {
		a, b, c := m.indices[i]+1, m.indices[i+1]+1, m.indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}
