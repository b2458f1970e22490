package ecs

import (
	"testing"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialIndexQueryAndPairs(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)

	idx := NewSpatialIndex()
	idx.Upsert(a, common.Vec3{X: 0}, 1)
	idx.Upsert(b, common.Vec3{X: 1.5, Y: 40}, 1)
	idx.Upsert(c, common.Vec3{X: 50}, 1)

	require.Equal(t, 3, idx.Len())
	// Height is ignored by the broadphase.
	assert.Equal(t, [][2]Entity{{a, b}}, idx.Pairs())
	assert.Equal(t, []Entity{c}, idx.Query(common.Vec3{X: 48}, 2))

	idx.Upsert(c, common.Vec3{X: 1.8}, 1)
	assert.Equal(t, [][2]Entity{{a, b}, {a, c}, {b, c}}, idx.Pairs())

	idx.Remove(b)
	assert.False(t, idx.Has(b))
	assert.Equal(t, [][2]Entity{{a, c}}, idx.Pairs())
	assert.Equal(t, []Entity{a, c}, idx.Entities())
}

func TestSpatialIndexMove(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)

	idx := NewSpatialIndex()
	idx.Upsert(a, common.Vec3{}, 1)
	idx.Upsert(b, common.Vec3{X: 100}, 1)

	for step := 1; step <= 5; step++ {
		idx.Upsert(a, common.Vec3{X: float64(step) * 20}, 1)
	}

	assert.Empty(t, idx.Query(common.Vec3{}, 2))
	assert.Equal(t, []Entity{a, b}, idx.Query(common.Vec3{X: 100}, 2))
	assert.Equal(t, [][2]Entity{{a, b}}, idx.Pairs())
	assert.Equal(t, 2, idx.Len())

	idx.Upsert(a, common.Vec3{Z: 30}, 1)
	assert.Empty(t, idx.Pairs())
	assert.Equal(t, []Entity{a}, idx.Query(common.Vec3{Z: 30}, 2))
}

func TestSpatialIndexRadiusChange(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)

	idx := NewSpatialIndex()
	idx.Upsert(a, common.Vec3{}, 1)
	idx.Upsert(b, common.Vec3{X: 10}, 1)
	assert.Empty(t, idx.Pairs())

	idx.Upsert(a, common.Vec3{}, 12)
	assert.Equal(t, [][2]Entity{{a, b}}, idx.Pairs())
	assert.Equal(t, 2, idx.Len())
}

func TestSnapshotNearest(t *testing.T) {
	w := NewWorld()
	player := CreateEntity(w)
	near := CreateEntity(w)
	far := CreateEntity(w)
	dead := CreateEntity(w)

	for _, indexed := range []bool{false, true} {
		idx := NewSpatialIndex()
		snap := NewSnapshot()
		if indexed {
			snap = NewIndexedSnapshot(idx)
		}
		put := func(e Entity, pos common.Vec3, f combat.Faction, alive bool) {
			snap.Put(e, Committed{Position: pos, Faction: f, Alive: alive})
			idx.Upsert(e, pos, 0.01)
		}
		put(player, common.Vec3{}, combat.FactionPlayer, true)
		put(near, common.Vec3{X: 10}, combat.FactionEnemy, true)
		put(far, common.Vec3{X: 30}, combat.FactionEnemy, true)
		put(dead, common.Vec3{X: 5}, combat.FactionEnemy, false)

		got, ok := snap.Nearest(common.Vec3{}, 60, combat.FactionEnemy)
		require.True(t, ok)
		assert.Equal(t, near.Ref(), got.ID)

		_, ok = snap.Nearest(common.Vec3{}, 8, combat.FactionEnemy)
		assert.False(t, ok)

		got, ok = snap.Nearest(common.Vec3{X: 30}, 60, combat.FactionPlayer)
		require.True(t, ok)
		assert.Equal(t, player.Ref(), got.ID)
	}

	var empty *Snapshot
	_, ok := empty.Nearest(common.Vec3{}, 100, combat.FactionEnemy)
	assert.False(t, ok)
}
