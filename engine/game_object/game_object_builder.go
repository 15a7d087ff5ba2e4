package game_object

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the label of the GameObject.
//
// Parameters:
//   - name: the object label
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is built into the frame.
//
// Parameters:
//   - enabled: true to build the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithBuild sets the function that emits the GameObject's local geometry.
//
// Parameters:
//   - build: the geometry function
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the build function
func WithBuild(build BuildFunc) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.build = build
	}
}

// WithAnimate sets the hook that moves the GameObject each frame before it is built.
//
// Parameters:
//   - animate: the per-frame placement update
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the animate hook
func WithAnimate(animate AnimateFunc) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.animate = animate
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial rotation of the GameObject in degrees.
//
// Parameters:
//   - rx, ry, rz: rotation about each axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial per-axis scale of the GameObject.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithUniformScale sets the same scale on all three axes.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithUniformScale(s float32) GameObjectBuilderOption {
	return WithScale(s, s, s)
}
