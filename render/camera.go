package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed rotation pivots. These are not the camera's local axes.
var (
	worldX = mgl32.Vec3{1, 0, 0}
	worldY = mgl32.Vec3{0, 1, 0}
	worldZ = mgl32.Vec3{0, 0, 1}
)

// Camera is a free camera oriented by a quaternion. The view and projection
// matrices are cached and recomputed whenever the values they depend on change.
type Camera struct {
	position    mgl32.Vec3
	orientation mgl32.Quat

	fieldOfView float32 // radians
	aspectRatio float32
	nearPlane   float32
	farPlane    float32

	// Local camera axes, taken from the view rotation
	axisX mgl32.Vec3
	axisY mgl32.Vec3
	axisZ mgl32.Vec3

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

func NewCamera(position mgl32.Vec3, fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	c := &Camera{}
	c.Reset(position, fov, aspectRatio, nearPlane, farPlane)
	return c
}

// Reset returns the camera to the pose it would have if it were newly constructed
// with the same arguments.
func (c *Camera) Reset(position mgl32.Vec3, fov, aspectRatio, nearPlane, farPlane float32) {
	c.position = position
	c.orientation = mgl32.QuatIdent()

	c.fieldOfView = fov
	c.aspectRatio = aspectRatio
	c.nearPlane = nearPlane
	c.farPlane = farPlane

	c.updateProjection()
	c.UpdateView()
}

// UpdateView rebuilds the view matrix from the orientation and position
func (c *Camera) UpdateView() {
	rotation := c.orientation.Mat4()

	// The rows of the rotation are the camera axes in world space
	c.axisX = rotation.Row(0).Vec3()
	c.axisY = rotation.Row(1).Vec3()
	c.axisZ = rotation.Row(2).Vec3()

	// Translate by the inverse of the position expressed in camera space
	c.viewMatrix = rotation
	c.viewMatrix[12] = -c.axisX.Dot(c.position)
	c.viewMatrix[13] = -c.axisY.Dot(c.position)
	c.viewMatrix[14] = -c.axisZ.Dot(c.position)
}

func (c *Camera) updateProjection() {
	c.projectionMatrix = mgl32.Perspective(c.fieldOfView, c.aspectRatio, c.nearPlane, c.farPlane)
}

// Rotate applies pitch about the world X axis and then yaw about the world Y axis.
func (c *Camera) Rotate(pitch, yaw float32) {
	c.orientation = c.orientation.Mul(AxisAngleQuaternion(worldX, pitch)).Normalize()
	c.orientation = c.orientation.Mul(AxisAngleQuaternion(worldY, yaw)).Normalize()
	c.UpdateView()
}

func (c *Camera) Roll(angle float32) {
	c.orientation = c.orientation.Mul(AxisAngleQuaternion(worldZ, angle)).Normalize()
	c.UpdateView()
}

// Pan moves the camera along its own X and Y axes
func (c *Camera) Pan(dx, dy float32) {
	c.position = c.position.Add(c.axisX.Mul(dx))
	c.position = c.position.Add(c.axisY.Mul(dy))
	c.UpdateView()
}

// Zoom moves the camera along its local Y axis, not along the view direction.
func (c *Camera) Zoom(amount float32) {
	c.position = c.position.Add(c.axisY.Mul(amount))
	c.UpdateView()
}

func (c *Camera) SetFieldOfView(fov float32) {
	c.fieldOfView = fov
	c.updateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.aspectRatio = aspectRatio
	c.updateProjection()
}

func (c *Camera) SetNearPlane(nearPlane float32) {
	c.nearPlane = nearPlane
	c.updateProjection()
}

func (c *Camera) SetFarPlane(farPlane float32) {
	c.farPlane = farPlane
	c.updateProjection()
}

func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.UpdateView()
}

func (c *Camera) FieldOfView() float32 {
	return c.fieldOfView
}

func (c *Camera) AspectRatio() float32 {
	return c.aspectRatio
}

func (c *Camera) NearPlane() float32 {
	return c.nearPlane
}

func (c *Camera) FarPlane() float32 {
	return c.farPlane
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Orientation() mgl32.Quat {
	return c.orientation
}

// Axes returns the camera's local X, Y and Z axes in world space
func (c *Camera) Axes() (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	return c.axisX, c.axisY, c.axisZ
}

// Forward is the direction the camera looks in (negative local Z)
func (c *Camera) Forward() mgl32.Vec3 {
	return c.axisZ.Mul(-1)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

// AxisAngleQuaternion builds the rotation of angle radians about axis.
// The result is only a unit quaternion if axis is unit length.
func AxisAngleQuaternion(axis mgl32.Vec3, angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, axis)
}
