package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/stretchr/testify/assert"
)

func TestConfigureDefaults(t *testing.T) {
	w := configure()
	assert.Equal(t, 600, w.width)
	assert.Equal(t, 600, w.height)
	assert.Equal(t, uint32(common.KeyEsc), w.closeKey)
}

func TestConfigureFitsSizeIntoLimits(t *testing.T) {
	w := configure(
		WithTitle("Lorenz Attractor"),
		WithSize(2000, 100),
		WithSizeLimits(300, 300, 1200, 900),
	)
	assert.Equal(t, "Lorenz Attractor", w.title)
	assert.Equal(t, 1200, w.width)
	assert.Equal(t, 300, w.height)

	w = configure(WithSizeLimits(400, 400, 100, 100))
	assert.Equal(t, 400, w.maxWidth)
	assert.Equal(t, 400, w.width)
}

func TestWithSizeIgnoresNonPositive(t *testing.T) {
	w := configure(WithSize(0, -5))
	assert.Equal(t, 600, w.width)
	assert.Equal(t, 600, w.height)

	w = configure(WithSize(800, 0))
	assert.Equal(t, 800, w.width)
	assert.Equal(t, 600, w.height)
}

func TestWithCloseKey(t *testing.T) {
	assert.Zero(t, configure(WithCloseKey(0)).closeKey)
}

func TestTitleQueue(t *testing.T) {
	w := configure(WithTitle("start"))

	w.SetTitle("start")
	_, ok := w.takeTitle()
	assert.False(t, ok)

	w.SetTitle("Angle=20,30  Cube")
	assert.Equal(t, "Angle=20,30  Cube", w.Title())
	title, ok := w.takeTitle()
	assert.True(t, ok)
	assert.Equal(t, "Angle=20,30  Cube", title)
	assert.Equal(t, "Angle=20,30  Cube", w.Title())

	_, ok = w.takeTitle()
	assert.False(t, ok)
}
