package prefabs

import (
	"fmt"
	"sync"
)

const (
	PlayerFile  = "player.yaml"
	PickupsFile = "pickups.yaml"
	DamageFile  = "damage.yaml"
	MarkersFile = "markers.yaml"
)

var (
	HostileFiles    = []string{"turret.yaml", "tank.yaml"}
	ProjectileFiles = []string{"bullet.yaml", "enemy_bullet.yaml", "missile.yaml"}
)

// Catalog is every prefab the simulation builds from. It is safe to read
// while a watcher goroutine reloads files.
type Catalog struct {
	mu          sync.RWMutex
	player      PlayerSpec
	hostiles    map[string]HostileSpec
	projectiles map[string]ProjectileSpec
	pickups     PickupsSpec
	damage      DamageSpec
	markers     MarkersSpec
}

func LoadCatalog() (*Catalog, error) {
	c := &Catalog{
		hostiles:    make(map[string]HostileSpec),
		projectiles: make(map[string]ProjectileSpec),
	}

	files := []string{PlayerFile, PickupsFile, DamageFile, MarkersFile}
	files = append(files, HostileFiles...)
	files = append(files, ProjectileFiles...)
	for _, name := range files {
		if _, err := c.Reload(name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Reload re-reads one prefab file. It reports false for files the catalog
// does not know about.
func (c *Catalog) Reload(name string) (bool, error) {
	name = cleanPrefabPath(name)
	switch {
	case name == PlayerFile:
		spec, err := LoadSpec[PlayerSpec](name)
		if err != nil {
			return true, err
		}
		c.mu.Lock()
		c.player = spec
		c.mu.Unlock()
	case name == PickupsFile:
		spec, err := LoadSpec[PickupsSpec](name)
		if err != nil {
			return true, err
		}
		c.mu.Lock()
		c.pickups = spec
		c.mu.Unlock()
	case name == DamageFile:
		spec, err := LoadSpec[DamageSpec](name)
		if err != nil {
			return true, err
		}
		if _, err := spec.Table(); err != nil {
			return true, fmt.Errorf("prefabs: %s: %w", name, err)
		}
		c.mu.Lock()
		c.damage = spec
		c.mu.Unlock()
	case name == MarkersFile:
		spec, err := LoadSpec[MarkersSpec](name)
		if err != nil {
			return true, err
		}
		c.mu.Lock()
		c.markers = spec
		c.mu.Unlock()
	case contains(HostileFiles, name):
		spec, err := LoadSpec[HostileSpec](name)
		if err != nil {
			return true, err
		}
		if spec.Name == "" {
			return true, fmt.Errorf("prefabs: %s: missing name", name)
		}
		c.mu.Lock()
		c.hostiles[spec.Name] = spec
		c.mu.Unlock()
	case contains(ProjectileFiles, name):
		spec, err := LoadSpec[ProjectileSpec](name)
		if err != nil {
			return true, err
		}
		if spec.Name == "" {
			return true, fmt.Errorf("prefabs: %s: missing name", name)
		}
		c.mu.Lock()
		c.projectiles[spec.Name] = spec
		c.mu.Unlock()
	default:
		return false, nil
	}
	return true, nil
}

func (c *Catalog) Player() PlayerSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.player
}

func (c *Catalog) Hostile(name string) (HostileSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.hostiles[name]
	return spec, ok
}

func (c *Catalog) Projectile(name string) (ProjectileSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.projectiles[name]
	return spec, ok
}

func (c *Catalog) Pickups() PickupsSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pickups
}

func (c *Catalog) Damage() DamageSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.damage
}

func (c *Catalog) Marker(kind string) (MarkerSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.markers.Kinds[kind]
	return spec, ok
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
