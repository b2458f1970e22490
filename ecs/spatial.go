package ecs

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gunship/common"
)

// SpatialIndex is a broadphase over the ground plane backed by a Chipmunk
// space. World X maps to space X and world Z to space Y. Nothing is ever
// stepped; the space is only used for its bounding-box tree.
type SpatialIndex struct {
	space *cp.Space

	shapes        map[Entity]*cp.Shape
	shapeToEntity map[*cp.Shape]Entity
	radii         map[Entity]float64
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		space:         cp.NewSpace(),
		shapes:        make(map[Entity]*cp.Shape),
		shapeToEntity: make(map[*cp.Shape]Entity),
		radii:         make(map[Entity]float64),
	}
}

func planar(v common.Vec3) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// Upsert places e as a circle of radius r centred on pos.
func (s *SpatialIndex) Upsert(e Entity, pos common.Vec3, r float64) {
	if s == nil || !e.Valid() {
		return
	}
	if r <= 0 {
		r = 0.01
	}
	shape, ok := s.shapes[e]
	if ok && s.radii[e] != r {
		s.Remove(e)
		ok = false
	}
	if !ok {
		body := cp.NewKinematicBody()
		body.SetPosition(planar(pos))
		shape = cp.NewCircle(body, r, cp.Vector{})
		shape.SetSensor(true)
		s.space.AddBody(body)
		s.space.AddShape(shape)
		s.shapes[e] = shape
		s.shapeToEntity[shape] = e
		s.radii[e] = r
		return
	}
	// The space is never stepped, so a moved shape is re-added to refresh
	// its bounds in the tree.
	s.space.RemoveShape(shape)
	shape.Body().SetPosition(planar(pos))
	s.space.AddShape(shape)
}

func (s *SpatialIndex) Remove(e Entity) {
	if s == nil {
		return
	}
	shape, ok := s.shapes[e]
	if !ok {
		return
	}
	body := shape.Body()
	s.space.RemoveShape(shape)
	if body != nil {
		s.space.RemoveBody(body)
	}
	delete(s.shapes, e)
	delete(s.shapeToEntity, shape)
	delete(s.radii, e)
}

func (s *SpatialIndex) Has(e Entity) bool {
	if s == nil {
		return false
	}
	_, ok := s.shapes[e]
	return ok
}

func (s *SpatialIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.shapes)
}

// Entities returns every indexed entity in ascending order.
func (s *SpatialIndex) Entities() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.shapes))
	for e := range s.shapes {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Query returns entities whose bounds touch the square of half-size radius
// around center, in ascending order. Callers apply their own exact test.
func (s *SpatialIndex) Query(center common.Vec3, radius float64) []Entity {
	if s == nil || len(s.shapes) == 0 {
		return nil
	}
	c := planar(center)
	bb := cp.BB{L: c.X - radius, B: c.Y - radius, R: c.X + radius, T: c.Y + radius}
	seen := make(map[Entity]struct{})
	var out []Entity
	s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := s.shapeToEntity[shape]
		if !ok {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pairs returns every unordered pair of indexed entities whose bounds
// overlap, sorted, each pair as (lower, higher).
func (s *SpatialIndex) Pairs() [][2]Entity {
	if s == nil {
		return nil
	}
	seen := make(map[[2]Entity]struct{})
	var out [][2]Entity
	for _, e := range s.Entities() {
		shape := s.shapes[e]
		bb := shape.BB()
		s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(other *cp.Shape, _ interface{}) {
			o, ok := s.shapeToEntity[other]
			if !ok || o == e {
				return
			}
			key := [2]Entity{min(e, o), max(e, o)}
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}, nil)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
