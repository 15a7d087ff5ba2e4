package lorenz

import "github.com/Carmen-Shannon/oxy-scenes/common"

const (
	// Points is the number of points on the traced curve.
	Points = 50000
	// TimeStep is the Euler integration step.
	TimeStep = 0.001
)

// Params are the Lorenz system coefficients sigma (S), rho (R) and beta (B).
type Params struct {
	S, R, B float64
}

// DefaultParams are the classic chaotic coefficients.
var DefaultParams = Params{S: 10, R: 28, B: 2.6666}

// Start is the initial point of every trace.
var Start = [3]float64{1, 1, 1}

// Trace integrates the Lorenz system with explicit Euler steps from start and
// returns n points, start included. The integration runs in float64 and the
// points are narrowed for drawing.
//
// Parameters:
//   - p: the system coefficients
//   - start: the initial point
//   - dt: the time step
//   - n: the number of points
//
// Returns:
//   - []common.Vec3: the curve
func Trace(p Params, start [3]float64, dt float64, n int) []common.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]common.Vec3, n)
	x, y, z := start[0], start[1], start[2]
	out[0] = common.Vec3{float32(x), float32(y), float32(z)}
	for i := 1; i < n; i++ {
		dx := p.S * (y - x)
		dy := x*(p.R-z) - y
		dz := x*y - p.B*z
		x += dt * dx
		y += dt * dy
		z += dt * dz
		out[i] = common.Vec3{float32(x), float32(y), float32(z)}
	}
	return out
}
