package combat

import (
	"fmt"
	"sort"
)

// Tag is the collision identity of a simulation entity.
type Tag string

const (
	TagPlayer        Tag = "player"
	TagEnemy         Tag = "enemy"
	TagBullet        Tag = "bullet"
	TagEnemyBullet   Tag = "enemy_bullet"
	TagMissile       Tag = "missile"
	TagHealthPickup  Tag = "health_pickup"
	TagBulletPickup  Tag = "bullet_pickup"
	TagMissilePickup Tag = "missile_pickup"
	TagCoinPickup    Tag = "coin_pickup"
)

// IsProjectile reports whether entities with this tag are spent on contact.
func (t Tag) IsProjectile() bool {
	return t == TagBullet || t == TagEnemyBullet || t == TagMissile
}

func (t Tag) IsPickup() bool {
	switch t {
	case TagHealthPickup, TagBulletPickup, TagMissilePickup, TagCoinPickup:
		return true
	}
	return false
}

// DamageEntry is one row of a damage table.
type DamageEntry struct {
	Projectile Tag `yaml:"projectile"`
	Target     Tag `yaml:"target"`
	Amount     int `yaml:"amount"`
}

type damageKey struct {
	projectile Tag
	target     Tag
}

// DamageTable maps (projectile, target) pairs to damage amounts.
type DamageTable struct {
	entries map[damageKey]int
}

// DefaultDamageEntries are the built-in amounts used when no table is loaded.
func DefaultDamageEntries() []DamageEntry {
	return []DamageEntry{
		{Projectile: TagBullet, Target: TagEnemy, Amount: 1},
		{Projectile: TagMissile, Target: TagEnemy, Amount: 5},
		{Projectile: TagEnemyBullet, Target: TagPlayer, Amount: 5},
	}
}

func DefaultDamageTable() *DamageTable {
	t, _ := NewDamageTable(DefaultDamageEntries())
	return t
}

// NewDamageTable builds a table, rejecting non-projectile sources and
// negative amounts.
func NewDamageTable(entries []DamageEntry) (*DamageTable, error) {
	t := &DamageTable{entries: make(map[damageKey]int, len(entries))}
	for _, e := range entries {
		if !e.Projectile.IsProjectile() {
			return nil, fmt.Errorf("combat: damage table: %q is not a projectile", e.Projectile)
		}
		if e.Amount < 0 {
			return nil, fmt.Errorf("combat: damage table: negative amount for %s->%s", e.Projectile, e.Target)
		}
		t.entries[damageKey{projectile: e.Projectile, target: e.Target}] = e.Amount
	}
	return t, nil
}

func (t *DamageTable) Lookup(projectile, target Tag) (int, bool) {
	if t == nil {
		return 0, false
	}
	amount, ok := t.entries[damageKey{projectile: projectile, target: target}]
	return amount, ok
}

// Entries returns the rows sorted by projectile then target.
func (t *DamageTable) Entries() []DamageEntry {
	if t == nil {
		return nil
	}
	out := make([]DamageEntry, 0, len(t.entries))
	for k, v := range t.entries {
		out = append(out, DamageEntry{Projectile: k.projectile, Target: k.target, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Projectile != out[j].Projectile {
			return out[i].Projectile < out[j].Projectile
		}
		return out[i].Target < out[j].Target
	})
	return out
}
