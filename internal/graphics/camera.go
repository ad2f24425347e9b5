package graphics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection and look-at constants of the viewer
const (
	CameraFOV   = 45.0
	CameraNear  = 0.1
	CameraFar   = 100.0
	CameraLimit = 5.0

	degenerateEpsilon = 1e-6
)

var (
	CameraTarget = mgl32.Vec3{0.5, 0.5, 0.5}
	CameraUp     = mgl32.Vec3{0, 0, 1}
)

// CameraParams is the eye position, each axis kept within [-CameraLimit, CameraLimit]
type CameraParams struct {
	X, Y, Z float32
}

// Eye returns the position as a vector
func (p CameraParams) Eye() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Clamped returns p with every axis limited to [-CameraLimit, CameraLimit]
func (p CameraParams) Clamped() CameraParams {
	clamp := func(v float32) float32 {
		return math32.Max(-CameraLimit, math32.Min(CameraLimit, v))
	}
	return CameraParams{X: clamp(p.X), Y: clamp(p.Y), Z: clamp(p.Z)}
}

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Target      mgl32.Vec3
	Up          mgl32.Vec3
}

func NewCamera(aspect float32) Camera {
	return Camera{
		AspectRatio: aspect,
		FOV:         CameraFOV,
		NearPlane:   CameraNear,
		FarPlane:    CameraFar,
		Target:      CameraTarget,
		Up:          CameraUp,
	}
}

func (c Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewMatrix looks from p at the fixed target. Degenerate positions are not
// corrected and may yield NaN entries.
func (c Camera) ViewMatrix(p CameraParams) mgl32.Mat4 {
	return mgl32.LookAtV(p.Eye(), c.Target, c.Up)
}

// Degenerate reports whether the eye sits on the target or the view direction
// is parallel to the up vector, where look-at has no unique basis
func (c Camera) Degenerate(p CameraParams) bool {
	dir := c.Target.Sub(p.Eye())
	dist := dir.Len()
	if dist < degenerateEpsilon || math32.IsNaN(dist) {
		return true
	}
	side := dir.Mul(1 / dist).Cross(c.Up)
	return side.Len() < degenerateEpsilon
}

// ComputeMatrices returns the per-frame transforms. The cube never moves, so
// model is always the identity.
func ComputeMatrices(p CameraParams, aspect float32) (model, view, projection mgl32.Mat4) {
	c := NewCamera(aspect)
	return mgl32.Ident4(), c.ViewMatrix(p), c.ProjectionMatrix()
}
