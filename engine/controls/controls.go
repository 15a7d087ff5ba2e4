package controls

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/window"
)

// Command mutates demo state in response to input.
type Command func()

// Binding associates one input with a command. Exactly one of Char or Key is set.
type Binding struct {
	// Char is the typed character, or 0 for special-key bindings.
	Char rune

	// Key is the GLFW key code of a non-printable key, or 0 for character bindings.
	Key uint32

	// Help is the one-line description shown in the help banner.
	Help string

	// Do is the command to run.
	Do Command
}

// Label returns the human readable name of the binding's input.
func (b Binding) Label() string {
	if b.Char != 0 {
		return string(b.Char)
	}
	if name, ok := keyNames[b.Key]; ok {
		return name
	}
	return fmt.Sprintf("key %d", b.Key)
}

var keyNames = map[uint32]string{
	common.KeyRight:    "Right",
	common.KeyLeft:     "Left",
	common.KeyUp:       "Up",
	common.KeyDown:     "Down",
	common.KeyPageUp:   "PgUp",
	common.KeyPageDown: "PgDn",
	common.KeyEsc:      "Esc",
}

// Bindings is a key -> command table. Character bindings dispatch on the typed
// rune so 'm' and 'M' are distinct; special-key bindings dispatch on the GLFW
// key code. Commands run under the table's lock, one at a time.
type Bindings interface {
	// HandleChar runs the command bound to the character.
	//
	// Parameters:
	//   - char: the typed character
	//
	// Returns:
	//   - bool: true if a binding matched
	HandleChar(char rune) bool

	// HandleKey runs the command bound to the special key.
	//
	// Parameters:
	//   - key: the GLFW key code
	//
	// Returns:
	//   - bool: true if a binding matched
	HandleKey(key uint32) bool

	// Bindings returns the bindings in registration order.
	Bindings() []Binding

	// Attach routes the window's char and key-down events to this table.
	//
	// Parameters:
	//   - w: the window to listen to
	Attach(w window.Window)
}

// bindings is the implementation of the Bindings interface.
type bindings struct {
	mu    sync.Mutex
	chars map[rune]int
	keys  map[uint32]int
	order []Binding
	after Command
}

var _ Bindings = &bindings{}

// NewBindings creates a binding table from the given options. A later
// binding for the same input replaces the earlier one.
//
// Parameters:
//   - options: the bindings to register
//
// Returns:
//   - Bindings: the table
func NewBindings(options ...BindingsBuilderOption) Bindings {
	b := &bindings{
		chars: make(map[rune]int),
		keys:  make(map[uint32]int),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// add registers or replaces a binding.
func (b *bindings) add(bind Binding) {
	if bind.Char != 0 {
		if i, ok := b.chars[bind.Char]; ok {
			b.order[i] = bind
			return
		}
		b.chars[bind.Char] = len(b.order)
	} else {
		if i, ok := b.keys[bind.Key]; ok {
			b.order[i] = bind
			return
		}
		b.keys[bind.Key] = len(b.order)
	}
	b.order = append(b.order, bind)
}

func (b *bindings) HandleChar(char rune) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.chars[char]
	if !ok {
		return false
	}
	b.run(b.order[i])
	return true
}

func (b *bindings) HandleKey(key uint32) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.keys[key]
	if !ok {
		return false
	}
	b.run(b.order[i])
	return true
}

func (b *bindings) run(bind Binding) {
	if bind.Do != nil {
		bind.Do()
	}
	if b.after != nil {
		b.after()
	}
}

func (b *bindings) Bindings() []Binding {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Binding, len(b.order))
	copy(out, b.order)
	return out
}

func (b *bindings) Attach(w window.Window) {
	w.SetCharCallback(func(char rune) {
		b.HandleChar(char)
	})
	w.SetKeyDownCallback(func(key uint32) {
		b.HandleKey(key)
	})
}
