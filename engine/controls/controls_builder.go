package controls

// BindingsBuilderOption is a functional option for configuring Bindings.
type BindingsBuilderOption func(*bindings)

// WithChar binds a typed character.
//
// Parameters:
//   - char: the character
//   - help: the banner description
//   - do: the command
//
// Returns:
//   - BindingsBuilderOption: option function to apply
func WithChar(char rune, help string, do Command) BindingsBuilderOption {
	return func(b *bindings) {
		b.add(Binding{Char: char, Help: help, Do: do})
	}
}

// WithChars binds several characters to the same command.
//
// Parameters:
//   - chars: the characters
//   - help: the banner description, shown once
//   - do: the command
//
// Returns:
//   - BindingsBuilderOption: option function to apply
func WithChars(chars string, help string, do Command) BindingsBuilderOption {
	return func(b *bindings) {
		for i, c := range []rune(chars) {
			h := help
			if i > 0 {
				h = ""
			}
			b.add(Binding{Char: c, Help: h, Do: do})
		}
	}
}

// WithKey binds a special key by GLFW key code.
//
// Parameters:
//   - key: the key code
//   - help: the banner description
//   - do: the command
//
// Returns:
//   - BindingsBuilderOption: option function to apply
func WithKey(key uint32, help string, do Command) BindingsBuilderOption {
	return func(b *bindings) {
		b.add(Binding{Key: key, Help: help, Do: do})
	}
}

// WithAfter sets a command run after every matched binding, typically to
// rebuild derived state.
//
// Parameters:
//   - after: the command
//
// Returns:
//   - BindingsBuilderOption: option function to apply
func WithAfter(after Command) BindingsBuilderOption {
	return func(b *bindings) {
		b.after = after
	}
}
