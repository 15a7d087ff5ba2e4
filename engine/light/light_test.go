package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.True(t, l.Enabled())
	assert.True(t, l.Smooth())
	assert.False(t, l.LocalViewer())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Diffuse())
}

func TestSettersClamp(t *testing.T) {
	l := NewLight(WithAmbient(2), WithDiffuse(-1))
	assert.Equal(t, float32(1), l.Ambient())
	assert.Equal(t, float32(0), l.Diffuse())

	l.SetAmbient(-0.5)
	assert.Equal(t, float32(0), l.Ambient())
	l.SetSpecular(-3)
	assert.Equal(t, float32(0), l.Specular())
}

func TestGPULightPacking(t *testing.T) {
	l := NewLight(
		WithPosition(5, 1.5, 0),
		WithAmbient(0.25),
		WithColor(1, 0.5, 0),
		WithSpecular(0.5),
		WithLocalViewer(true),
		WithSmooth(false),
	)

	g := l.GPU()
	assert.Equal(t, [4]float32{5, 1.5, 0, 1}, g.Position)
	assert.Equal(t, [4]float32{0.25, 0.25, 0.25, 1}, g.Ambient)
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, g.Diffuse)
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 1}, g.Specular)
	assert.Equal(t, [4]uint32{1, 1, 0, 0}, g.Flags)

	buf := g.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, 80, g.Size())
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[64+FlagLocalViewer*4:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[64+FlagSmooth*4:]))
}

func TestDisabledLightClearsFlag(t *testing.T) {
	l := NewLight()
	l.SetEnabled(false)
	assert.Equal(t, uint32(0), l.GPU().Flags[FlagLighting])
}
