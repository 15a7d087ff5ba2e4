package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
)

// BuildFunc emits an object's geometry in its local frame.
type BuildFunc func(b mesh.Builder, f mesh.Frame)

// AnimateFunc updates an object's placement from the frame before it is built.
type AnimateFunc func(obj GameObject, f mesh.Frame)

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool
	build   BuildFunc
	animate AnimateFunc

	mu       sync.RWMutex
	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

// GameObject defines the interface for a placed scene entity.
// A GameObject owns a world placement (position, rotation in degrees about
// x, y and z, per-axis scale) and a BuildFunc that emits its geometry in
// local space; Build wraps the call in the placement transform.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's label.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is built into the frame.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the rotation angles in degrees.
	//
	// Returns:
	//   - rx, ry, rz: rotation about each axis
	Rotation() (rx, ry, rz float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is built into the frame.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition sets the world position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the rotation angles in degrees.
	//
	// Parameters:
	//   - rx, ry, rz: rotation about each axis
	SetRotation(rx, ry, rz float32)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale components
	SetScale(sx, sy, sz float32)

	// Build runs the animate hook, then emits the object's geometry into b
	// under translate, rotate (y, x, z) and scale.
	//
	// Parameters:
	//   - b: the mesh builder to draw into
	//   - f: the current frame inputs
	Build(b mesh.Builder, f mesh.Frame)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject instance with the provided options.
// The default placement is the origin with no rotation and unit scale.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the configured GameObject
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Build(b mesh.Builder, f mesh.Frame) {
	if g.build == nil {
		return
	}
	if g.animate != nil {
		g.animate(g, f)
	}

	g.mu.RLock()
	pos, rot, scale := g.position, g.rotation, g.scale
	g.mu.RUnlock()

	b.Push()
	defer b.Pop()
	b.Translate(pos[0], pos[1], pos[2])
	b.Rotate(rot[1], 0, 1, 0)
	b.Rotate(rot[0], 1, 0, 0)
	b.Rotate(rot[2], 0, 0, 1)
	b.Scale(scale[0], scale[1], scale[2])
	g.build(b, f)
}
