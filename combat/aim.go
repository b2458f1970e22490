package combat

import (
	"math"
	"time"

	"github.com/milk9111/gunship/common"
)

// AimServo slews a turret's yaw toward a target and holds its barrel pitch
// inside a fixed elevation band.
type AimServo struct {
	Yaw   float64
	Pitch float64
	// Slew is the fraction of the remaining angle closed per second.
	Slew     float64
	MinPitch float64
	MaxPitch float64
}

// NewAimServo builds a servo with pitch limits given in degrees.
func NewAimServo(slew, minPitchDeg, maxPitchDeg float64) AimServo {
	return AimServo{
		Slew:     slew,
		MinPitch: common.Deg2Rad(minPitchDeg),
		MaxPitch: common.Deg2Rad(maxPitchDeg),
	}
}

// Track moves one tick toward the bearing from muzzle to target.
func (s *AimServo) Track(muzzle, target common.Vec3, dt time.Duration) {
	if s == nil {
		return
	}
	dir := target.Sub(muzzle)
	if dir.Len() == 0 {
		return
	}
	step := s.Slew * dt.Seconds()
	s.Yaw = common.WrapAngle(common.LerpAngle(s.Yaw, common.Yaw(dir), step))
	pitch := common.Lerp(s.Pitch, common.Pitch(dir), common.Clamp(step, 0, 1))
	s.Pitch = common.Clamp(pitch, s.MinPitch, s.MaxPitch)
}

// Forward is the unit barrel direction.
func (s *AimServo) Forward() common.Vec3 {
	if s == nil {
		return common.Vec3{X: 1}
	}
	cp := math.Cos(s.Pitch)
	return common.Vec3{
		X: cp * math.Cos(s.Yaw),
		Y: math.Sin(s.Pitch),
		Z: cp * math.Sin(s.Yaw),
	}
}
