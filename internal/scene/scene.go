// Package scene holds the decorative background: a wireframe icosahedron and
// a particle field that rotate a little on every tick. The server keeps the
// rotation state and streams it to browsers, which only draw.
package scene

import (
	"math/rand"
)

const (
	SphereStep    = 0.002
	ParticlesStep = -0.0005

	particleSpread = 100.0
)

type Camera struct {
	FOV  float64 `json:"fov"`
	Near float64 `json:"near"`
	Far  float64 `json:"far"`
	Z    float64 `json:"z"`
}

type Sphere struct {
	Radius  float64 `json:"radius"`
	Detail  int     `json:"detail"`
	Color   int     `json:"color"`
	Opacity float64 `json:"opacity"`
}

type Particles struct {
	Positions []float32 `json:"positions"`
	Size      float64   `json:"size"`
	Color     int       `json:"color"`
}

// Geometry is everything a client needs to build the scene once.
type Geometry struct {
	Camera    Camera    `json:"camera"`
	Sphere    Sphere    `json:"sphere"`
	Particles Particles `json:"particles"`
}

// Frame is the rotation state after Seq published frames.
type Frame struct {
	Seq        uint64  `json:"seq"`
	SphereX    float64 `json:"sphere_x"`
	SphereY    float64 `json:"sphere_y"`
	ParticlesY float64 `json:"particles_y"`
}

// Scene is owned by a single loop. Geometry never changes after New and may
// be read from any goroutine.
type Scene struct {
	geometry Geometry

	sphereX    float64
	sphereY    float64
	particlesY float64
}

// New places count particles uniformly in a cube centred on the origin.
// The same seed always gives the same field.
func New(count int, seed int64) *Scene {
	if count < 0 {
		count = 0
	}
	rng := rand.New(rand.NewSource(seed))
	pos := make([]float32, count*3)
	for i := range pos {
		pos[i] = float32((rng.Float64() - 0.5) * particleSpread)
	}

	return &Scene{geometry: Geometry{
		Camera:    Camera{FOV: 75, Near: 0.1, Far: 1000, Z: 30},
		Sphere:    Sphere{Radius: 10, Detail: 1, Color: 0x00f2ff, Opacity: 0.3},
		Particles: Particles{Positions: pos, Size: 0.15, Color: 0x7000ff},
	}}
}

func (s *Scene) Geometry() Geometry {
	return s.geometry
}

// Advance applies one tick of rotation.
func (s *Scene) Advance() {
	s.sphereX += SphereStep
	s.sphereY += SphereStep
	s.particlesY += ParticlesStep
}

func (s *Scene) Frame(seq uint64) Frame {
	return Frame{
		Seq:        seq,
		SphereX:    s.sphereX,
		SphereY:    s.sphereY,
		ParticlesY: s.particlesY,
	}
}
