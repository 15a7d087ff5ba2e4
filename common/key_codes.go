package common

// KeyEsc is the GLFW key code of the Escape key, which closes every demo window.
const KeyEsc = 256

// Navigation keys delivered through the key callback only. Printable keys
// arrive as runes through the char callback so shifted variants stay distinct.
// Values match GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyRight    = 262 // Right arrow (GLFW)
	KeyLeft     = 263 // Left arrow (GLFW)
	KeyDown     = 264 // Down arrow (GLFW)
	KeyUp       = 265 // Up arrow (GLFW)
	KeyPageUp   = 266 // Page Up (GLFW)
	KeyPageDown = 267 // Page Down (GLFW)
)
