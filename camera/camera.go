// Package camera provides a perspective camera with a post-view-projection hook,
// the collaborator that tile cameras are derived from.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Values are the plain camera properties that can be transferred between cameras.
// The post-view-projection transform is not part of Values: it belongs to the
// camera it was set on.
type Values struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // degrees
	Near   float32
	Far    float32

	Viewport [2]int
	Aspect   float32
}

// Source provides camera values, e.g. a Camera driven by navigation.
type Source interface {
	Snapshot() Values
}

// DefaultValues returns the values of a freshly created camera.
func DefaultValues() Values {
	return Values{
		Eye:      mgl32.Vec3{0, 0, 1},
		Center:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Near:     2,
		Far:      8,
		Viewport: [2]int{1, 1},
		Aspect:   1,
	}
}

// Camera is a perspective camera. It is not safe for concurrent use.
type Camera struct {
	values Values

	postViewProjection    mgl32.Mat4
	hasPostViewProjection bool

	altered bool
}

var _ Source = (*Camera)(nil)

// New creates a camera with default values.
func New() *Camera {
	return FromValues(DefaultValues())
}

// FromValues creates a camera with the given values and no post-view-projection.
func FromValues(v Values) *Camera {
	return &Camera{values: v, altered: true}
}

// Copy returns an independent deep clone, post-view-projection included.
func (c *Camera) Copy() *Camera {
	clone := *c
	return &clone
}

func (c *Camera) Snapshot() Values {
	return c.values
}

// Apply overwrites all values of the camera. The post-view-projection is kept.
func (c *Camera) Apply(v Values) {
	if c.values == v {
		return
	}
	c.values = v
	c.altered = true
}

// CopyAllValues overwrites the values of target with the values of c.
func (c *Camera) CopyAllValues(target *Camera) {
	target.Apply(c.Snapshot())
}

func (c *Camera) Eye() mgl32.Vec3    { return c.values.Eye }
func (c *Camera) Center() mgl32.Vec3 { return c.values.Center }
func (c *Camera) Up() mgl32.Vec3     { return c.values.Up }
func (c *Camera) FovY() float32      { return c.values.FovY }
func (c *Camera) Near() float32      { return c.values.Near }
func (c *Camera) Far() float32       { return c.values.Far }
func (c *Camera) Viewport() [2]int   { return c.values.Viewport }
func (c *Camera) Aspect() float32    { return c.values.Aspect }

func (c *Camera) SetEye(eye mgl32.Vec3) {
	v := c.values
	v.Eye = eye
	c.Apply(v)
}

func (c *Camera) SetCenter(center mgl32.Vec3) {
	v := c.values
	v.Center = center
	c.Apply(v)
}

func (c *Camera) SetUp(up mgl32.Vec3) {
	v := c.values
	v.Up = up
	c.Apply(v)
}

func (c *Camera) SetFovY(fovy float32) {
	v := c.values
	v.FovY = fovy
	c.Apply(v)
}

func (c *Camera) SetNear(near float32) {
	v := c.values
	v.Near = near
	c.Apply(v)
}

func (c *Camera) SetFar(far float32) {
	v := c.values
	v.Far = far
	c.Apply(v)
}

// SetViewport sets the viewport size in pixels. The aspect ratio is not changed.
func (c *Camera) SetViewport(width, height int) {
	v := c.values
	v.Viewport = [2]int{width, height}
	c.Apply(v)
}

func (c *Camera) SetAspect(aspect float32) {
	v := c.values
	v.Aspect = aspect
	c.Apply(v)
}

// Altered reports whether any property changed since the flag was last cleared.
func (c *Camera) Altered() bool {
	return c.altered
}

func (c *Camera) SetAltered(altered bool) {
	c.altered = altered
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.values.Eye, c.values.Center, c.values.Up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.values.FovY), c.values.Aspect, c.values.Near, c.values.Far)
}

// ViewProjection returns projection * view, left-multiplied by the
// post-view-projection transform if one is set.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	viewProjection := c.Projection().Mul4(c.View())
	if c.hasPostViewProjection {
		return c.postViewProjection.Mul4(viewProjection)
	}
	return viewProjection
}

// ViewProjectionInverse returns the inverse of ViewProjection.
func (c *Camera) ViewProjectionInverse() mgl32.Mat4 {
	return c.ViewProjection().Inv()
}

// PostViewProjection returns the transform applied after the view-projection
// and whether one is set.
func (c *Camera) PostViewProjection() (mgl32.Mat4, bool) {
	return c.postViewProjection, c.hasPostViewProjection
}

func (c *Camera) SetPostViewProjection(m mgl32.Mat4) {
	if c.hasPostViewProjection && c.postViewProjection == m {
		return
	}
	c.postViewProjection = m
	c.hasPostViewProjection = true
	c.altered = true
}

func (c *Camera) ClearPostViewProjection() {
	if !c.hasPostViewProjection {
		return
	}
	c.postViewProjection = mgl32.Mat4{}
	c.hasPostViewProjection = false
	c.altered = true
}
