package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/prefabs"
)

var ErrUnknownPrefab = errors.New("entity: unknown prefab")

// Spawner builds entities by prefab name from a catalog.
type Spawner struct {
	catalog *prefabs.Catalog
}

func NewSpawner(catalog *prefabs.Catalog) *Spawner {
	return &Spawner{catalog: catalog}
}

func (s *Spawner) Catalog() *prefabs.Catalog {
	return s.catalog
}

func (s *Spawner) Player(w *ecs.World) (ecs.Entity, error) {
	return NewPlayer(w, s.catalog.Player())
}

// Spawn places a hostile variant ("turret", "tank") or a pickup tag.
func (s *Spawner) Spawn(w *ecs.World, kind string, pos common.Vec3) (ecs.Entity, error) {
	if spec, ok := s.catalog.Hostile(kind); ok {
		return NewHostile(w, spec, pos)
	}
	if tag := combat.Tag(kind); tag.IsPickup() {
		return NewPickup(w, s.catalog.Pickups(), tag, pos)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrefab, kind)
}

func (s *Spawner) Bullet(w *ecs.World, name string, pos, dir common.Vec3, owner ecs.Entity) (ecs.Entity, error) {
	spec, ok := s.catalog.Projectile(name)
	if !ok {
		return 0, fmt.Errorf("%w: projectile %q", ErrUnknownPrefab, name)
	}
	return NewBullet(w, spec, pos, dir, owner)
}

func (s *Spawner) Missile(w *ecs.World, name string, pos common.Vec3, target MissileTarget, owner ecs.Entity) (ecs.Entity, error) {
	spec, ok := s.catalog.Projectile(name)
	if !ok {
		return 0, fmt.Errorf("%w: projectile %q", ErrUnknownPrefab, name)
	}
	return NewMissile(w, spec, pos, target, owner)
}

// ProjectileSpec returns the named projectile spec, for callers that need its
// search radius or explosion settings.
func (s *Spawner) ProjectileSpec(name string) (prefabs.ProjectileSpec, bool) {
	return s.catalog.Projectile(name)
}

func (s *Spawner) Marker(w *ecs.World, kind string, pos common.Vec3) (ecs.Entity, error) {
	spec, ok := s.catalog.Marker(kind)
	if !ok {
		return 0, fmt.Errorf("%w: marker %q", ErrUnknownPrefab, kind)
	}
	return NewMarker(w, kind, pos, spec.Lifetime)
}
