// Package sceneio loads the JSON scene description format into a
// scene.Scene, applying per-entity-type defaults and dropping entities
// marked disabled.
package sceneio

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	remath "github.com/flooferdoodle/gorender/math"
	"github.com/flooferdoodle/gorender/scene"
)

type sceneFile struct {
	Cam     json.RawMessage   `json:"cam"`
	Objects []json.RawMessage `json:"objects"`
	Lights  []json.RawMessage `json:"lights"`
}

type camData struct {
	Pos      *[3]float32 `json:"pos"`
	Target   *[3]float32 `json:"target"`
	Up       *[3]float32 `json:"up"`
	FOVDeg   *float32    `json:"fov"`
	Aspect   *float32    `json:"aspect"`
	NearClip *float32    `json:"nearClip"`
	FarClip  *float32    `json:"farClip"`
}

type objectData struct {
	Type      string      `json:"type"`
	Pos       *[3]float32 `json:"pos"`
	Scale     json.RawMessage `json:"scale"`
	Euler     *[3]float32 `json:"euler"`
	Color     *[3]float32 `json:"color"`
	Shininess *float32    `json:"shininess"`
	Subdivide *int        `json:"subdivide"`
	Disable   bool        `json:"disable"`
}

type lightData struct {
	Type        string      `json:"type"`
	Pos         *[3]float32 `json:"pos"`
	Color       *[3]float32 `json:"color"`
	Ambient     *float32    `json:"ambient"`
	Specular    *float32    `json:"specular"`
	Attenuation *[3]float32 `json:"attenuation"`
	DSize       *float32    `json:"d_size"`
	Disable     bool        `json:"disable"`
}

// Load reads path, parses the scene JSON document, applies defaults, and
// builds a scene.Scene. Each light additionally spawns a visual emitter
// icosphere sized by its d_size.
func Load(path string) (*scene.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: read %s: %w", path, err)
	}

	var sf sceneFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("sceneio: parse %s: %w", path, err)
	}

	cam, err := buildCamera(sf.Cam)
	if err != nil {
		return nil, fmt.Errorf("sceneio: camera: %w", err)
	}
	s := scene.NewScene(cam)

	for i, raw := range sf.Objects {
		var od objectData
		if err := json.Unmarshal(raw, &od); err != nil {
			return nil, fmt.Errorf("sceneio: objects[%d]: %w", i, err)
		}
		if od.Disable {
			continue
		}
		m, err := buildMesh(od)
		if err != nil {
			return nil, fmt.Errorf("sceneio: objects[%d]: %w", i, err)
		}
		s.AddMesh(m)
	}

	for i, raw := range sf.Lights {
		var ld lightData
		if err := json.Unmarshal(raw, &ld); err != nil {
			return nil, fmt.Errorf("sceneio: lights[%d]: %w", i, err)
		}
		if ld.Disable {
			continue
		}
		l, emitter, err := buildLight(ld)
		if err != nil {
			return nil, fmt.Errorf("sceneio: lights[%d]: %w", i, err)
		}
		s.AddLight(l)
		s.AddMesh(emitter)
	}

	return s, nil
}

func vec3(arr *[3]float32, fallback remath.Vec3) remath.Vec3 {
	if arr == nil {
		return fallback
	}
	return remath.NewVec3(arr[0], arr[1], arr[2])
}

func buildCamera(raw json.RawMessage) (*scene.Camera, error) {
	cd := camData{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cd); err != nil {
			return nil, err
		}
	}

	pos := vec3(cd.Pos, remath.NewVec3(0, 0, 3))
	target := vec3(cd.Target, remath.Vec3Zero)
	up := vec3(cd.Up, remath.Vec3Up)

	fovDeg := float32(90)
	if cd.FOVDeg != nil {
		fovDeg = *cd.FOVDeg
	}
	aspect := float32(1)
	if cd.Aspect != nil {
		aspect = *cd.Aspect
	}
	near := float32(0.1)
	if cd.NearClip != nil {
		near = *cd.NearClip
	}
	far := float32(100)
	if cd.FarClip != nil {
		far = *cd.FarClip
	}

	return scene.NewCamera(pos, target, up, fovDeg*float32(math.Pi)/180, aspect, near, far), nil
}

func parseScale(raw json.RawMessage) (remath.Vec3, error) {
	if len(raw) == 0 {
		return remath.Vec3One, nil
	}
	var scalar float32
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return remath.NewVec3(scalar, scalar, scalar), nil
	}
	var arr [3]float32
	if err := json.Unmarshal(raw, &arr); err != nil {
		return remath.Vec3{}, fmt.Errorf("scale must be a number or [x,y,z] array: %w", err)
	}
	return remath.NewVec3(arr[0], arr[1], arr[2]), nil
}

func buildMesh(od objectData) (*scene.Mesh, error) {
	if od.Pos == nil {
		return nil, fmt.Errorf("missing required field %q", "pos")
	}

	var m *scene.Mesh
	switch od.Type {
	case "cube":
		m = scene.NewCube()
	case "plane":
		m = scene.NewPlane()
	case "icosahedron":
		m = scene.NewIcosahedron()
	case "icosphere":
		subdivide := 1
		if od.Subdivide != nil {
			subdivide = *od.Subdivide
		}
		m = scene.NewIcosphere(subdivide)
	default:
		return nil, fmt.Errorf("unknown object type %q", od.Type)
	}

	scale, err := parseScale(od.Scale)
	if err != nil {
		return nil, err
	}

	m.Translation = vec3(od.Pos, remath.Vec3Zero)
	m.Euler = vec3(od.Euler, remath.Vec3Zero)
	m.Scale = scale

	color := vec3(od.Color, remath.NewVec3(1, 1, 1))
	colors := make([]remath.Vec4, len(m.Positions))
	for i := range colors {
		colors[i] = color.ToVec4(1)
	}
	m.Colors = colors

	m.Shininess = 64
	if od.Shininess != nil {
		m.Shininess = *od.Shininess
	}

	return m, nil
}

func buildLight(ld lightData) (*scene.Light, *scene.Mesh, error) {
	if ld.Pos == nil {
		return nil, nil, fmt.Errorf("missing required field %q", "pos")
	}
	if ld.Type != "" && ld.Type != "point" {
		return nil, nil, fmt.Errorf("unknown light type %q", ld.Type)
	}

	pos := vec3(ld.Pos, remath.Vec3Zero)
	color := vec3(ld.Color, remath.NewVec3(1, 1, 1))

	ambient := float32(0.1)
	if ld.Ambient != nil {
		ambient = *ld.Ambient
	}
	specular := float32(2)
	if ld.Specular != nil {
		specular = *ld.Specular
	}
	atten := vec3(ld.Attenuation, remath.NewVec3(1, 0.7, 1.8))

	dSize := float32(0.05)
	if ld.DSize != nil {
		dSize = *ld.DSize
	}

	light := scene.NewLight(pos, color, ambient, specular, atten.X, atten.Y, atten.Z)

	emitter := scene.NewIcosphere(1)
	emitter.Translation = pos
	emitter.Scale = remath.NewVec3(dSize, dSize, dSize)
	emitter.Shininess = -1
	colors := make([]remath.Vec4, len(emitter.Positions))
	for i := range colors {
		colors[i] = color.ToVec4(1)
	}
	emitter.Colors = colors

	return light, emitter, nil
}
