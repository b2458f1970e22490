package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/economy"
	"github.com/milk9111/gunship/ecs/entity"
	"github.com/milk9111/gunship/sim"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixels per world unit in the top-down view
	viewScale = 6.0
	// where the player sits horizontally on screen
	viewAnchorX = 240.0
	gridSpacing = 20.0

	stickDeadzone = 0.2
)

// Game draws the simulation from above: world X runs right and lateral Z
// runs down the screen.
type Game struct {
	sim    *sim.Sim
	wallet *economy.Wallet
	stats  *economy.Stats
	logger zerolog.Logger

	reloads <-chan string
	missile bool
	snap    sim.Snapshot
}

func NewGame(s *sim.Sim, wallet *economy.Wallet, stats *economy.Stats, logger zerolog.Logger) *Game {
	return &Game{
		sim:    s,
		wallet: wallet,
		stats:  stats,
		logger: logger,
		snap:   s.Snapshot(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReloads()

	in := readInput()
	// Missile presses are edge triggered, so keep one until a tick uses it.
	g.missile = g.missile || in.Missile
	in.Missile = g.missile

	if !g.snap.GameOverVisible {
		dt := time.Second / time.Duration(ebiten.TPS())
		g.sim.Step(dt, in)
		g.missile = false
		for _, evt := range g.sim.Drain() {
			g.logEvent(evt)
		}
	}
	g.snap = g.sim.Snapshot()
	return nil
}

func (g *Game) pollReloads() {
	for {
		select {
		case name, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			err := g.sim.Reload(name)
			if err != nil && !errors.Is(err, entity.ErrUnknownPrefab) {
				g.logger.Error().Err(err).Str("file", name).Msg("reload failed")
			}
		default:
			return
		}
	}
}

func (g *Game) logEvent(evt combat.Event) {
	switch evt.Type {
	case combat.EventEnemyKilled, combat.EventPlayerDied, combat.EventPickupConsumed:
		g.logger.Info().Str("event", string(evt.Type)).Str("kind", evt.Kind).Int("amount", evt.Amount).Msg("combat")
	}
}

func readInput() sim.Input {
	var in sim.Input
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Steer.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Steer.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Steer.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Steer.Y -= 1
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Missile = inpututil.IsKeyJustPressed(ebiten.KeyM)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			in.Steer.X = lx
		}
		if math.Abs(ly) > stickDeadzone {
			in.Steer.Y = -ly
		}
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Missile = in.Missile || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkolivegreen)
	g.drawGrid(screen)

	for _, v := range g.snap.Entities {
		g.drawEntity(screen, v)
	}

	ebitenutil.DebugPrint(screen, g.hud())
	if g.snap.GameOverVisible {
		g.drawGameOver(screen)
	}
}

func (g *Game) project(p common.Vec3) (float32, float32) {
	x := viewAnchorX + (p.X-g.snap.Position.X)*viewScale
	y := baseHeight/2 + p.Z*viewScale
	return float32(x), float32(y)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	line := color.NRGBA{R: 255, G: 255, B: 255, A: 24}
	first := math.Floor((g.snap.Position.X-viewAnchorX/viewScale)/gridSpacing) * gridSpacing
	for wx := first; ; wx += gridSpacing {
		x, _ := g.project(common.Vec3{X: wx})
		if x > baseWidth {
			break
		}
		vector.StrokeLine(screen, x, 0, x, baseHeight, 1, line, false)
	}
}

func (g *Game) drawEntity(screen *ebiten.Image, v sim.EntityView) {
	x, y := g.project(v.Position)
	if x < -50 || x > baseWidth+50 {
		return
	}
	r := float32(math.Max(2, v.Radius*viewScale))
	clr := g.color(v)
	vector.FillRect(screen, x-r, y-r, 2*r, 2*r, clr, true)

	switch v.Class {
	case sim.ClassHostile, sim.ClassPlayer:
		// heading
		hx := x + float32(math.Cos(v.Yaw))*r*1.8
		hy := y + float32(math.Sin(v.Yaw))*r*1.8
		vector.StrokeLine(screen, x, y, hx, hy, 2, colornames.White, true)
		if v.Alive && v.Health < 1 {
			vector.FillRect(screen, x-r, y-r-6, 2*r*float32(v.Health), 3, colornames.Lime, false)
			vector.StrokeRect(screen, x-r, y-r-6, 2*r, 3, 1, colornames.Black, false)
		}
	}
}

func (g *Game) color(v sim.EntityView) color.Color {
	catalog := g.sim.Catalog()
	switch v.Class {
	case sim.ClassPlayer:
		return catalog.Player().Color.Or(colornames.Skyblue)
	case sim.ClassHostile:
		if !v.Alive {
			return colornames.Dimgray
		}
		if spec, ok := catalog.Hostile(v.Kind); ok {
			return spec.Color.Or(colornames.Crimson)
		}
		return colornames.Crimson
	case sim.ClassProjectile:
		if spec, ok := catalog.Projectile(v.Kind); ok {
			return spec.Color.Or(colornames.Yellow)
		}
		return colornames.Yellow
	case sim.ClassPickup:
		if k, ok := catalog.Pickups().Kinds[combat.Tag(v.Kind)]; ok {
			return k.Color.Or(colornames.Gold)
		}
		return colornames.Gold
	case sim.ClassMarker:
		if spec, ok := catalog.Marker(v.Kind); ok {
			return spec.Color.Or(colornames.Orange)
		}
		return colornames.Orange
	}
	return colornames.Magenta
}

func (g *Game) hud() string {
	s := g.snap
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.0f  T: %s\n", ebiten.ActualFPS(), s.Time.Truncate(100*time.Millisecond))
	fmt.Fprintf(&b, "HP %d/%d  ALT %.1f\n", s.Health, s.MaxHealth, s.Position.Y)
	fmt.Fprintf(&b, "GUN %d/%d", s.Magazine, s.Bullets)
	if s.BulletState == combat.AmmoReloading {
		fmt.Fprintf(&b, "  reloading %.0f%%", s.BulletReload*100)
	}
	fmt.Fprintf(&b, "\nMSL %d", s.Missiles)
	if !s.MissileLoaded {
		fmt.Fprintf(&b, "  loading %.0f%%", s.MissileReload*100)
	}
	fmt.Fprintf(&b, "\nKILLS %d  EARNED %d  COINS %d\n", s.Kills, s.Earned, g.wallet.GetCoinCount())

	// Warnings blink while pending.
	on := s.Time/(250*time.Millisecond)%2 == 0
	if on && s.BulletWarning {
		b.WriteString("OUT OF AMMO\n")
	}
	if on && s.MissileWarning {
		b.WriteString("MISSILES EMPTY\n")
	}
	if on && s.NoTargetWarning {
		b.WriteString("NO TARGET IN RANGE\n")
	}
	return b.String()
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, baseWidth, baseHeight, color.NRGBA{A: 160}, false)

	msg := "GAME OVER"
	if res, over := g.stats.Result(); over {
		msg = fmt.Sprintf("GAME OVER\n\nKills: %d\nEarned: %d\nBonus: %d\nTotal: %d\nTrophies: %d\n\nEsc to quit",
			res.Kills, res.Earned, res.Bonus, res.Total, res.Trophies)
	}
	ebitenutil.DebugPrintAt(screen, msg, baseWidth/2-60, baseHeight/2-60)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
