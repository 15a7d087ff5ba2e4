package controls

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	var log []string
	afters := 0
	b := NewBindings(
		WithChar('m', "next", func() { log = append(log, "m") }),
		WithChar('M', "previous", func() { log = append(log, "M") }),
		WithKey(common.KeyUp, "pitch up", func() { log = append(log, "up") }),
		WithAfter(func() { afters++ }),
	)

	assert.True(t, b.HandleChar('m'))
	assert.True(t, b.HandleChar('M'))
	assert.True(t, b.HandleKey(common.KeyUp))
	assert.False(t, b.HandleChar('q'))
	assert.False(t, b.HandleKey(common.KeyDown))

	assert.Equal(t, []string{"m", "M", "up"}, log)
	assert.Equal(t, 3, afters)
}

func TestLaterBindingReplaces(t *testing.T) {
	hit := ""
	b := NewBindings(
		WithChar('x', "first", func() { hit = "first" }),
		WithChar('x', "second", func() { hit = "second" }),
	)
	require.Len(t, b.Bindings(), 1)
	b.HandleChar('x')
	assert.Equal(t, "second", hit)
}

func TestWithCharsSharesCommand(t *testing.T) {
	n := 0
	b := NewBindings(WithChars("aA", "toggle axes", func() { n++ }))
	b.HandleChar('a')
	b.HandleChar('A')
	assert.Equal(t, 2, n)

	binds := b.Bindings()
	require.Len(t, binds, 2)
	assert.Equal(t, "toggle axes", binds[0].Help)
	assert.Empty(t, binds[1].Help)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "m", Binding{Char: 'm'}.Label())
	assert.Equal(t, "PgDn", Binding{Key: common.KeyPageDown}.Label())
	assert.Equal(t, "key 999", Binding{Key: 999}.Label())
}

func TestBannerListsBindings(t *testing.T) {
	b := NewBindings(
		WithChars("aA", "toggle axes", nil),
		WithKey(common.KeyLeft, "rotate left", nil),
	)
	out := Banner("objects", b)
	assert.Contains(t, out, "objects")
	assert.Contains(t, out, "a A")
	assert.Contains(t, out, "toggle axes")
	assert.Contains(t, out, "Left")
	assert.Contains(t, out, "quit")
	assert.Greater(t, strings.Count(out, "\n"), 3)
}

func TestNumericHelpers(t *testing.T) {
	assert.Equal(t, float32(355), Wrap360(-5))
	assert.Equal(t, float32(0), Wrap360(360))
	assert.Equal(t, float32(10), Wrap360(370))

	assert.Equal(t, float32(-5), Orbit(-365))
	assert.Equal(t, float32(0), Orbit(360))

	assert.Equal(t, 100, Step(95, 10, 0, 100))
	assert.Equal(t, 0, Step(5, -10, 0, 100))
	assert.Equal(t, float32(1.5), Step[float32](1, 0.5, 0, 2))
	assert.Equal(t, 45, Clamp(99, 1, 45))
}
