package combat

import "testing"

func TestDispatcherResolvesUnorderedPairs(t *testing.T) {
	cases := []struct {
		name    string
		contact Contact
		want    Reaction
	}{
		{
			name:    "bullet hits enemy",
			contact: Contact{A: 1, TagA: TagBullet, B: 2, TagB: TagEnemy},
			want:    Reaction{Kind: ReactDamage, Amount: 1, Receiver: 2, Consumed: 1, Source: TagBullet},
		},
		{
			name:    "enemy reported first",
			contact: Contact{A: 2, TagA: TagEnemy, B: 1, TagB: TagBullet},
			want:    Reaction{Kind: ReactDamage, Amount: 1, Receiver: 2, Consumed: 1, Source: TagBullet},
		},
		{
			name:    "missile hits enemy",
			contact: Contact{A: 3, TagA: TagMissile, B: 2, TagB: TagEnemy},
			want:    Reaction{Kind: ReactDamage, Amount: 5, Receiver: 2, Consumed: 3, Source: TagMissile},
		},
		{
			name:    "enemy bullet hits player",
			contact: Contact{A: 9, TagA: TagPlayer, B: 4, TagB: TagEnemyBullet},
			want:    Reaction{Kind: ReactDamage, Amount: 5, Receiver: 9, Consumed: 4, Source: TagEnemyBullet},
		},
		{
			name:    "health pickup",
			contact: Contact{A: 5, TagA: TagHealthPickup, B: 9, TagB: TagPlayer},
			want:    Reaction{Kind: ReactHeal, Amount: 50, Receiver: 9, Consumed: 5, Source: TagHealthPickup},
		},
		{
			name:    "bullet pickup",
			contact: Contact{A: 9, TagA: TagPlayer, B: 6, TagB: TagBulletPickup},
			want:    Reaction{Kind: ReactAddBullets, Amount: 200, Receiver: 9, Consumed: 6, Source: TagBulletPickup},
		},
		{
			name:    "missile pickup",
			contact: Contact{A: 7, TagA: TagMissilePickup, B: 9, TagB: TagPlayer},
			want:    Reaction{Kind: ReactAddMissiles, Amount: 20, Receiver: 9, Consumed: 7, Source: TagMissilePickup},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDispatcher(nil, nil)
			got, ok := d.Resolve(tc.contact)
			if !ok {
				t.Fatal("no reaction")
			}
			if got != tc.want {
				t.Fatalf("Resolve = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDispatcherIgnoresUnmappedPairs(t *testing.T) {
	d := NewDispatcher(nil, nil)
	pairs := []Contact{
		{A: 1, TagA: TagBullet, B: 2, TagB: TagPlayer},
		{A: 1, TagA: TagEnemyBullet, B: 2, TagB: TagEnemy},
		{A: 1, TagA: TagHealthPickup, B: 2, TagB: TagEnemy},
		{A: 1, TagA: TagBullet, B: 2, TagB: TagMissile},
	}
	for _, c := range pairs {
		if r, ok := d.Resolve(c); ok {
			t.Fatalf("%s/%s produced %+v", c.TagA, c.TagB, r)
		}
		if d.Consumed(c.A) || d.Consumed(c.B) {
			t.Fatal("unmapped pair consumed an entity")
		}
	}
}

func TestDispatcherAtMostOncePerProjectile(t *testing.T) {
	d := NewDispatcher(nil, nil)
	c := Contact{A: 1, TagA: TagBullet, B: 2, TagB: TagEnemy}
	hits := 0
	for tick := 0; tick < 5; tick++ {
		if _, ok := d.Resolve(c); ok {
			hits++
		}
	}
	if _, ok := d.Resolve(Contact{A: 3, TagA: TagEnemy, B: 1, TagB: TagBullet}); ok {
		hits++
	}
	if hits != 1 {
		t.Fatalf("bullet resolved %d times", hits)
	}

	d.Forget(1)
	if d.Consumed(1) {
		t.Fatal("Forget did not clear consumed flag")
	}
}

func TestDamageTableRejectsBadRows(t *testing.T) {
	if _, err := NewDamageTable([]DamageEntry{{Projectile: TagEnemy, Target: TagPlayer, Amount: 1}}); err == nil {
		t.Fatal("expected error for non-projectile source")
	}
	if _, err := NewDamageTable([]DamageEntry{{Projectile: TagBullet, Target: TagEnemy, Amount: -1}}); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestDamageTableCustomAmounts(t *testing.T) {
	table, err := NewDamageTable([]DamageEntry{{Projectile: TagBullet, Target: TagEnemy, Amount: 3}})
	if err != nil {
		t.Fatalf("NewDamageTable: %v", err)
	}
	d := NewDispatcher(table, nil)
	r, ok := d.Resolve(Contact{A: 1, TagA: TagBullet, B: 2, TagB: TagEnemy})
	if !ok || r.Amount != 3 {
		t.Fatalf("Resolve = %+v ok=%v", r, ok)
	}
	if _, ok := d.Resolve(Contact{A: 4, TagA: TagMissile, B: 2, TagB: TagEnemy}); ok {
		t.Fatal("missile row should be absent from custom table")
	}
}
