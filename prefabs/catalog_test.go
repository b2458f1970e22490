package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func useOverrideDir(t *testing.T, dir string) {
	t.Helper()
	prev := OverrideDir()
	SetOverrideDir(dir)
	t.Cleanup(func() { SetOverrideDir(prev) })
}

func TestLoadCatalogFromEmbeddedFiles(t *testing.T) {
	useOverrideDir(t, "")

	c, err := LoadCatalog()
	require.NoError(t, err)

	player := c.Player()
	assert.Equal(t, 100, player.Health)
	assert.Equal(t, 100*time.Millisecond, player.Guns.Cadence)
	assert.Len(t, player.Guns.Emitters, 2)
	assert.Equal(t, 50, player.Missiles.Count)
	assert.Equal(t, 3*time.Second, player.GameOverDelay)

	turret, ok := c.Hostile("turret")
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, turret.FSMConfig().AcquireDelay)
	assert.Equal(t, 5, turret.FSMConfig().ShotsBeforeReload)

	tank, ok := c.Hostile("tank")
	require.True(t, ok)
	assert.Equal(t, combat.TagCoinPickup, tank.Drop)
	assert.Equal(t, 20, tank.Health)
	assert.Equal(t, 500*time.Millisecond, tank.Grace)
	assert.Equal(t, time.Second, tank.FSMConfig().Cadence)
	assert.Equal(t, 25.0, tank.FSMConfig().Range)
	assert.Equal(t, 5, tank.FSMConfig().ShotsBeforeReload)
	assert.Equal(t, 5.0, tank.Aim.Slew)
	assert.True(t, tank.AimAtTarget)

	missile, ok := c.Projectile("missile")
	require.True(t, ok)
	assert.Equal(t, combat.TagMissile, missile.Kind)
	assert.Equal(t, 500*time.Millisecond, missile.FizzleAfter)

	rules := c.Pickups().Rules()
	assert.Equal(t, combat.PickupRule{Reaction: combat.ReactAddCoins, Amount: 25}, rules[combat.TagCoinPickup])

	table, err := c.Damage().Table()
	require.NoError(t, err)
	amount, ok := table.Lookup(combat.TagMissile, combat.TagEnemy)
	require.True(t, ok)
	assert.Equal(t, 5, amount)

	explosion, ok := c.Marker("explosion")
	require.True(t, ok)
	assert.Equal(t, time.Second, explosion.Lifetime)
}

func TestCatalogReloadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	useOverrideDir(t, dir)

	c, err := LoadCatalog()
	require.NoError(t, err)

	damage := "entries:\n  - {projectile: bullet, target: enemy, amount: 3}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DamageFile), []byte(damage), 0o644))

	known, err := c.Reload(DamageFile)
	require.True(t, known)
	require.NoError(t, err)
	table, err := c.Damage().Table()
	require.NoError(t, err)
	amount, _ := table.Lookup(combat.TagBullet, combat.TagEnemy)
	assert.Equal(t, 3, amount)

	bad := "entries:\n  - {projectile: enemy, target: player, amount: 3}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DamageFile), []byte(bad), 0o644))
	known, err = c.Reload(DamageFile)
	assert.True(t, known)
	assert.Error(t, err)
	table, err = c.Damage().Table()
	require.NoError(t, err)
	amount, _ = table.Lookup(combat.TagBullet, combat.TagEnemy)
	assert.Equal(t, 3, amount, "a rejected reload keeps the previous table")

	known, err = c.Reload("notes.yaml")
	assert.False(t, known)
	assert.NoError(t, err)
}

func TestCatalogReloadRejectsNamelessHostile(t *testing.T) {
	dir := t.TempDir()
	useOverrideDir(t, dir)

	c, err := LoadCatalog()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tank.yaml"), []byte("health: 3\n"), 0o644))
	_, err = c.Reload("prefabs/tank.yaml")
	assert.Error(t, err)

	tank, ok := c.Hostile("tank")
	require.True(t, ok)
	assert.Equal(t, 20, tank.Health)
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "olivedrab", want: colornames.Olivedrab},
		{in: "OliveDrab", want: colornames.Olivedrab},
		{in: "\"#4fc3f7\"", want: color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}},
		{in: "\"#10203080\"", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}},
		{in: "\"#abc\"", wantErr: true},
		{in: "\"#zzzzzz\"", wantErr: true},
		{in: "[1, 2]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Color)
		})
	}

	var unset YAMLColor
	assert.Equal(t, colornames.Red, unset.Or(colornames.Red))
}

func TestLoadScriptPaths(t *testing.T) {
	useOverrideDir(t, "")

	for _, name := range []string{"waves.tengo", "scripts/waves.tengo", "prefabs/scripts/waves.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "update := func")
	}
}

func TestWatcherReportsChangedSpecs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DamageFile), []byte("entries: []\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, DamageFile, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event")
	}
}
