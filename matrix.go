package consolegl

import "github.com/go-gl/mathgl/mgl32"

// MatrixMode selects which matrix subsequent matrix operations target.
func (c *Context) MatrixMode(mode int) {
	if !c.beginCheck() {
		return
	}
	switch mode {
	case ModelView:
		c.curMatrix = &c.matModelView
	case Projection:
		c.curMatrix = &c.matProj
	default:
		c.setError(InvalidEnum)
	}
}

// LoadIdentity replaces the current matrix with the identity.
func (c *Context) LoadIdentity() {
	if !c.beginCheck() {
		return
	}
	*c.curMatrix = mgl32.Ident4()
}

// Translate right-multiplies the current matrix by a translation.
func (c *Context) Translate(x, y, z float32) {
	if !c.beginCheck() {
		return
	}
	*c.curMatrix = c.curMatrix.Mul4(mgl32.Translate3D(x, y, z))
}

// Scale right-multiplies the current matrix by a scale.
func (c *Context) Scale(x, y, z float32) {
	if !c.beginCheck() {
		return
	}
	*c.curMatrix = c.curMatrix.Mul4(mgl32.Scale3D(x, y, z))
}

// Rotate right-multiplies the current matrix by a rotation of angle
// radians about the axis (x, y, z). The axis need not be normalized.
func (c *Context) Rotate(angle, x, y, z float32) {
	if !c.beginCheck() {
		return
	}
	axis := mgl32.Vec3{x, y, z}.Normalize()
	*c.curMatrix = c.curMatrix.Mul4(mgl32.HomogRotate3D(angle, axis))
}

// Perspective replaces the current matrix with a perspective projection.
// fovy is the vertical field of view in radians.
func (c *Context) Perspective(fovy, aspect, near, far float32) {
	*c.curMatrix = mgl32.Perspective(fovy, aspect, near, far)
}

// LookAt replaces the current matrix with a viewing transform placing the
// eye at (eyeX, eyeY, eyeZ) looking at the center point with the given up
// direction.
func (c *Context) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	*c.curMatrix = mgl32.LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ)
}
