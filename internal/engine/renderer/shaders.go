package renderer

// Surface shading is one directional light plus ambient, enough to read
// the normals and winding of a shape.
const surfaceVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vNormal = aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const surfaceFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform int uShowUV;

out vec4 FragColor;

void main() {
	vec3 base = uColor;
	if (uShowUV == 1) {
		base = vec3(vTexCoord, 0.25);
	}
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	FragColor = vec4(base * (0.25 + 0.75 * diffuse), 1.0);
}
`

// Axis meshes store the X, Y and Z segments as vertex pairs 0-1, 2-3, 4-5.
const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProj;

flat out int vAxis;

void main() {
	vAxis = gl_VertexID / 2;
	gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

flat in int vAxis;

out vec4 FragColor;

void main() {
	vec3 c = vec3(0.0);
	c[vAxis % 3] = 1.0;
	FragColor = vec4(c, 1.0);
}
`
