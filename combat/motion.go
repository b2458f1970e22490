package combat

import (
	"time"

	"github.com/milk9111/gunship/common"
)

// Linear is straight-line projectile motion with fixed orientation.
type Linear struct {
	Direction common.Vec3
	Speed     float64
}

func NewLinear(dir common.Vec3, speed float64) Linear {
	return Linear{Direction: dir.Normalize(), Speed: speed}
}

func (l Linear) Step(pos common.Vec3, dt time.Duration) common.Vec3 {
	return pos.Add(l.Direction.Scale(l.Speed * dt.Seconds()))
}

// Arc is a quadratic Bezier homing path. The end point follows the live
// target and freezes at the last sampled position once the target is gone.
type Arc struct {
	Start     common.Vec3
	Control   common.Vec3
	LastKnown common.Vec3
	Progress  float64
	// Speed is progress per second.
	Speed float64
	done  bool
}

// NewArc plans an arc from start toward target peaking height above their midpoint.
func NewArc(start, target common.Vec3, height, speed float64) Arc {
	return Arc{
		Start:     start,
		Control:   common.Midpoint(start, target).Add(common.Up.Scale(height)),
		LastKnown: target,
		Speed:     speed,
	}
}

// Advance moves along the curve. target is only sampled when alive is true.
// impact is true exactly once, on the tick progress reaches 1.
func (a *Arc) Advance(dt time.Duration, target common.Vec3, alive bool) (pos common.Vec3, impact bool) {
	if a == nil {
		return common.Vec3{}, false
	}
	if a.done {
		return a.LastKnown, false
	}
	if alive {
		a.LastKnown = target
	}
	a.Progress += a.Speed * dt.Seconds()
	if a.Progress >= 1 {
		a.done = true
		return a.LastKnown, true
	}
	return a.Position(), false
}

func (a *Arc) t() float64 {
	return common.Clamp(a.Progress, 0, 1)
}

func (a *Arc) Position() common.Vec3 {
	if a == nil {
		return common.Vec3{}
	}
	return common.QuadraticBezier(a.Start, a.Control, a.LastKnown, a.t())
}

// Heading is the instantaneous direction of travel.
func (a *Arc) Heading() common.Vec3 {
	if a == nil {
		return common.Vec3{}
	}
	return common.QuadraticBezierTangent(a.Start, a.Control, a.LastKnown, a.t()).Normalize()
}

func (a *Arc) Done() bool {
	return a != nil && a.done
}
