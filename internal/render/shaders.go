package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: ambient plus one directional light. No specular, the scene is matte.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  finalColor = vec4(ambient * tint.rgb + diffuse, tint.a);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform sampler2D texture0;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  finalColor = vec4(ambient * tint.rgb + diffuse, tint.a);
}
`
)

// setLitUniforms uploads this frame's lighting (cgo-safe: local arrays).
func setLitUniforms(shader rl.Shader, l lighting) {
	if !rl.IsShaderValid(shader) {
		return
	}
	dir := [3]float32{l.dir[0], l.dir[1], l.dir[2]}
	amb := [3]float32{l.ambient[0], l.ambient[1], l.ambient[2]}
	col := [3]float32{l.color[0], l.color[1], l.color[2]}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.intensity}, rl.ShaderUniformFloat)
	}
}
