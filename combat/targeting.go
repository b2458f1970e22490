package combat

import "github.com/milk9111/gunship/common"

// Candidate is a committed view of a potential target.
type Candidate struct {
	ID       uint64
	Position common.Vec3
	Faction  Faction
	Alive    bool
}

// Nearest returns the closest live candidate of faction want within radius
// of origin, inclusive. Ties go to the lower id so results do not depend on
// iteration order.
func Nearest(origin common.Vec3, radius float64, want Faction, candidates []Candidate) (Candidate, bool) {
	var (
		best     Candidate
		bestDist float64
		found    bool
	)
	for _, c := range candidates {
		if !c.Alive || c.Faction != want {
			continue
		}
		d := origin.Dist(c.Position)
		if d > radius {
			continue
		}
		if !found || d < bestDist || (d == bestDist && c.ID < best.ID) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// TargetFinder answers the nearest-opposing query against committed state.
type TargetFinder interface {
	Nearest(origin common.Vec3, radius float64, want Faction) (Candidate, bool)
}
