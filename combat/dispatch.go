package combat

// ReactionKind is the semantic effect of a resolved contact.
type ReactionKind int

const (
	ReactNone ReactionKind = iota
	ReactDamage
	ReactHeal
	ReactAddBullets
	ReactAddMissiles
	ReactAddCoins
)

func (k ReactionKind) String() string {
	switch k {
	case ReactDamage:
		return "damage"
	case ReactHeal:
		return "heal"
	case ReactAddBullets:
		return "add_bullets"
	case ReactAddMissiles:
		return "add_missiles"
	case ReactAddCoins:
		return "add_coins"
	default:
		return "none"
	}
}

// PickupRule is what a pickup grants when the player collects it.
type PickupRule struct {
	Reaction ReactionKind `yaml:"-"`
	Amount   int          `yaml:"amount"`
}

func DefaultPickupRules() map[Tag]PickupRule {
	return map[Tag]PickupRule{
		TagHealthPickup:  {Reaction: ReactHeal, Amount: 50},
		TagBulletPickup:  {Reaction: ReactAddBullets, Amount: 200},
		TagMissilePickup: {Reaction: ReactAddMissiles, Amount: 20},
		TagCoinPickup:    {Reaction: ReactAddCoins, Amount: 25},
	}
}

// Contact is the raw "A overlaps B" signal.
type Contact struct {
	A, B       uint64
	TagA, TagB Tag
}

// Reaction is a resolved contact. Receiver owns the effect and Consumed is
// the projectile or pickup spent producing it.
type Reaction struct {
	Kind     ReactionKind
	Amount   int
	Receiver uint64
	Consumed uint64
	Source   Tag
}

// Dispatcher turns contacts into reactions. Each projectile or pickup
// resolves at most once no matter how many contacts report it.
type Dispatcher struct {
	damage   *DamageTable
	pickups  map[Tag]PickupRule
	consumed map[uint64]struct{}
}

func NewDispatcher(table *DamageTable, pickups map[Tag]PickupRule) *Dispatcher {
	if table == nil {
		table = DefaultDamageTable()
	}
	if pickups == nil {
		pickups = DefaultPickupRules()
	}
	return &Dispatcher{
		damage:   table,
		pickups:  pickups,
		consumed: make(map[uint64]struct{}),
	}
}

// SetDamageTable swaps the table, e.g. after a prefab reload.
func (d *Dispatcher) SetDamageTable(table *DamageTable) {
	if d == nil || table == nil {
		return
	}
	d.damage = table
}

func (d *Dispatcher) DamageTable() *DamageTable {
	if d == nil {
		return nil
	}
	return d.damage
}

// Resolve maps an unordered contact to a reaction and marks the spent side
// consumed. It reports false for pairs with no reaction and for anything
// already consumed.
func (d *Dispatcher) Resolve(c Contact) (Reaction, bool) {
	if d == nil {
		return Reaction{}, false
	}
	if r, ok := d.resolveOrdered(c.A, c.TagA, c.B, c.TagB); ok {
		return d.consume(r)
	}
	if r, ok := d.resolveOrdered(c.B, c.TagB, c.A, c.TagA); ok {
		return d.consume(r)
	}
	return Reaction{}, false
}

func (d *Dispatcher) resolveOrdered(src uint64, srcTag Tag, dst uint64, dstTag Tag) (Reaction, bool) {
	if srcTag.IsProjectile() {
		amount, ok := d.damage.Lookup(srcTag, dstTag)
		if !ok {
			return Reaction{}, false
		}
		return Reaction{Kind: ReactDamage, Amount: amount, Receiver: dst, Consumed: src, Source: srcTag}, true
	}
	if srcTag.IsPickup() && dstTag == TagPlayer {
		rule, ok := d.pickups[srcTag]
		if !ok || rule.Reaction == ReactNone {
			return Reaction{}, false
		}
		return Reaction{Kind: rule.Reaction, Amount: rule.Amount, Receiver: dst, Consumed: src, Source: srcTag}, true
	}
	return Reaction{}, false
}

func (d *Dispatcher) consume(r Reaction) (Reaction, bool) {
	if _, done := d.consumed[r.Consumed]; done {
		return Reaction{}, false
	}
	d.consumed[r.Consumed] = struct{}{}
	return r, true
}

func (d *Dispatcher) Consumed(id uint64) bool {
	if d == nil {
		return false
	}
	_, ok := d.consumed[id]
	return ok
}

// Forget drops bookkeeping for an entity that has left the simulation.
func (d *Dispatcher) Forget(id uint64) {
	if d == nil {
		return
	}
	delete(d.consumed, id)
}
