//go:build !android

package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Box vertex shader: one unit cube mesh, instanced per mover with an offset
// and a color. Lighting happens in view space.
const boxVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aOffset;
layout(location = 3) in vec3 aColor;

uniform mat4 uProjection;
uniform mat4 uView;
uniform float uSize;

out vec3 vNormal;
out vec3 vColor;
out vec3 vViewPos;

void main() {
    vec4 view = uView * vec4(aPos * uSize + aOffset, 1.0);
    vViewPos = view.xyz;
    vNormal = mat3(uView) * aNormal;
    vColor = aColor;
    gl_Position = uProjection * view;
}
` + "\x00"

// Box fragment shader: Phong with one directional light plus ambient, then
// exponential-squared fog on view depth. vColor may leave [0,1]; the
// framebuffer clamps it.
const boxFragSrc = `#version 410 core

uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform vec3 uAmbient;
uniform vec3 uSpecular;
uniform float uShininess;
uniform vec3 uFogColor;
uniform float uFogDensity;

in vec3 vNormal;
in vec3 vColor;
in vec3 vViewPos;
out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diff = max(dot(n, uLightDir), 0.0);
    vec3 h = normalize(uLightDir + normalize(-vViewPos));
    float spec = pow(max(dot(n, h), 0.0), uShininess);
    vec3 col = vColor * (uAmbient + uLightColor * diff) + uSpecular * uLightColor * spec;

    float depth = -vViewPos.z;
    float fog = 1.0 - exp(-uFogDensity * uFogDensity * depth * depth);
    FragColor = vec4(mix(col, uFogColor, clamp(fog, 0.0, 1.0)), 1.0);
}
` + "\x00"

// Grid line shaders: colored world-space lines with the same fog.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 uProjection;
uniform mat4 uView;

out vec3 vColor;
out float vDepth;

void main() {
    vec4 view = uView * vec4(aPos, 1.0);
    vDepth = -view.z;
    vColor = aColor;
    gl_Position = uProjection * view;
}
` + "\x00"

const lineFragSrc = `#version 410 core

uniform vec3 uFogColor;
uniform float uFogDensity;

in vec3 vColor;
in float vDepth;
out vec4 FragColor;

void main() {
    float fog = 1.0 - exp(-uFogDensity * uFogDensity * vDepth * vDepth);
    FragColor = vec4(mix(vColor, uFogColor, clamp(fog, 0.0, 1.0)), 1.0);
}
` + "\x00"

// Overlay shaders: flat screen-space triangles in framebuffer pixels,
// origin top-left.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const overlayFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

func shaderLog(get func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8), id uint32) string {
	var n int32
	get(id, gl.INFO_LOG_LENGTH, &n)
	buf := strings.Repeat("\x00", int(n+1))
	read(id, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := shaderLog(gl.GetShaderiv, gl.GetShaderInfoLog, shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := shaderLog(gl.GetProgramiv, gl.GetProgramInfoLog, program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}

// uniforms looks up every named uniform of program.
func uniforms(program uint32, names ...string) map[string]int32 {
	locs := make(map[string]int32, len(names))
	for _, name := range names {
		locs[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return locs
}
