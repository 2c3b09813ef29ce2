package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer3d/level"
	"github.com/milk9111/platformer3d/sim"
	"github.com/milk9111/platformer3d/vmath"
)

// pixelsPerUnit scales world XZ units into screen pixels. The view is a
// plan projection centered on the player; height shows up in platform
// shading and the HUD, not in position.
const pixelsPerUnit = 28.0

var backgroundColor = color.RGBA{R: 18, G: 20, B: 26, A: 255}

// camera maps world XZ to screen coordinates, +Z up the screen.
type camera struct {
	center vmath.Vec3
}

func (c camera) point(p vmath.Vec3) (float32, float32) {
	x := baseWidth/2 + (p.X-c.center.X)*pixelsPerUnit
	y := baseHeight/2 - (p.Z-c.center.Z)*pixelsPerUnit
	return float32(x), float32(y)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.world.Snapshot()
	cam := camera{center: snap.Player.Pos}
	platforms := g.world.Platforms()

	// low to high so elevated platforms paint over the floor
	order := make([]int, len(platforms))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return platforms[order[a]].Top() < platforms[order[b]].Top()
	})
	for _, i := range order {
		g.drawPlatform(screen, cam, platforms[i])
	}

	g.drawGoal(screen, cam, snap)

	for _, c := range snap.Companions {
		g.drawCompanion(screen, cam, c)
	}
	if snap.Chaser != nil {
		g.drawEnemy(screen, cam, *snap.Chaser, colornames.Orangered)
		if g.opts.Debug {
			x, y := cam.point(snap.Chaser.Pos)
			vector.StrokeCircle(screen, x, y, float32(g.tun.ChaserAggroRange*pixelsPerUnit), 1, colornames.Darkred, true)
		}
	}
	if snap.Bomber != nil {
		g.drawEnemy(screen, cam, *snap.Bomber, colornames.Darkorange)
		if g.opts.Debug {
			x, y := cam.point(snap.Bomber.Pos)
			vector.StrokeCircle(screen, x, y, float32(g.tun.StandoffDistance*pixelsPerUnit), 1, colornames.Peru, true)
			vector.StrokeCircle(screen, x, y, float32(g.tun.ThrowRange*pixelsPerUnit), 1, colornames.Sienna, true)
		}
	}
	for _, b := range snap.Bombs {
		g.drawBomb(screen, cam, b)
	}

	g.drawPlayer(screen, cam, snap.Player)

	if g.flash > 0 {
		alpha := uint8(vmath.Clamp(g.flash/0.35, 0, 1) * 110)
		vector.FillRect(screen, 0, 0, baseWidth, baseHeight, color.RGBA{R: 255, A: alpha}, false)
	}
}

func (g *Game) drawPlatform(screen *ebiten.Image, cam camera, p level.Platform) {
	x0, y0 := cam.point(vmath.Vec3{X: p.Center[0] - p.Half[0], Z: p.Center[2] + p.Half[2]})
	w := float32(2 * p.Half[0] * pixelsPerUnit)
	h := float32(2 * p.Half[2] * pixelsPerUnit)

	fill := parseTint(p.Tint)
	vector.FillRect(screen, x0, y0, w, h, fill, false)
	vector.StrokeRect(screen, x0, y0, w, h, 1.5, lighten(fill), false)
}

func (g *Game) drawGoal(screen *ebiten.Image, cam camera, snap sim.Snapshot) {
	x, y := cam.point(g.world.Goal())
	r := float32(g.tun.GoalRadius * pixelsPerUnit)
	clr := colornames.Gold
	if snap.Collected < snap.Target {
		clr = colornames.Darkgoldenrod
	}
	vector.StrokeCircle(screen, x, y, r, 2, clr, true)
	vector.FillCircle(screen, x, y, 4, clr, true)
}

func (g *Game) drawPlayer(screen *ebiten.Image, cam camera, p sim.PlayerState) {
	x, y := cam.point(p.Pos)
	vector.FillCircle(screen, x, y, 0.5*pixelsPerUnit, colornames.Deepskyblue, true)
	drawHeading(screen, x, y, p.Facing, 0.9*pixelsPerUnit, colornames.White)

	// camera forward indicator
	drawHeading(screen, x, y, g.input.Yaw(), 1.4*pixelsPerUnit, colornames.Slategray)
}

func (g *Game) drawEnemy(screen *ebiten.Image, cam camera, e sim.EnemyState, clr color.RGBA) {
	x, y := cam.point(e.Pos)
	vector.FillCircle(screen, x, y, 0.45*pixelsPerUnit, clr, true)
	if e.Vel.LengthXZ() > vmath.Epsilon {
		drawHeading(screen, x, y, math.Atan2(e.Vel.X, e.Vel.Z), 0.8*pixelsPerUnit, colornames.White)
	}
}

func (g *Game) drawBomb(screen *ebiten.Image, cam camera, b sim.BombState) {
	x, y := cam.point(b.Pos)
	vector.FillCircle(screen, x, y, 0.25*pixelsPerUnit, colornames.Gold, true)
	// the fuse ring tightens as detonation approaches
	vector.StrokeCircle(screen, x, y, float32((0.25+b.Fuse*0.2)*pixelsPerUnit), 1, colornames.Orange, true)
}

func (g *Game) drawCompanion(screen *ebiten.Image, cam camera, c sim.CompanionState) {
	clr := colornames.Plum
	if c.Species == "dog" {
		clr = colornames.Burlywood
	}
	x, y := cam.point(c.Pos)
	vector.FillCircle(screen, x, y, 0.3*pixelsPerUnit, clr, true)
	if c.Collected {
		vector.StrokeCircle(screen, x, y, 0.45*pixelsPerUnit, 1.5, colornames.Palegreen, true)
	}
	drawHeading(screen, x, y, c.Facing, 0.5*pixelsPerUnit, colornames.White)
	if g.opts.Debug && c.Act != "none" {
		ebitenutil.DebugPrintAt(screen, c.Act, int(x)+6, int(y)-18)
	}
}

func (g *Game) drawRemotes(screen *ebiten.Image) {
	if g.receiver == nil {
		return
	}
	cam := camera{center: g.world.Player().Pos}
	for _, pkt := range g.receiver.Remotes() {
		x, y := cam.point(pkt.Snapshot.Player.Pos)
		vector.StrokeCircle(screen, x, y, 0.5*pixelsPerUnit, 2, colornames.Aquamarine, true)
		label := fmt.Sprintf("%s %d/%d", pkt.Session.String()[:8], pkt.Snapshot.Collected, pkt.Snapshot.Target)
		ebitenutil.DebugPrintAt(screen, label, int(x)+10, int(y)-20)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.world.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  TPS %.0f\nphase %s\ncollected %d/%d\naltitude %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		snap.Phase, snap.Collected, snap.Target, snap.Player.Pos.Y,
	))

	// stamina bar under the text block
	vector.StrokeRect(screen, 8, 72, 160, 10, 1, colornames.Slategray, false)
	vector.FillRect(screen, 9, 73, float32(158*vmath.Clamp(snap.Player.Stamina, 0, 1)), 8, colornames.Mediumseagreen, false)

	if g.bannerTTL > 0 {
		ebitenutil.DebugPrintAt(screen, g.banner, baseWidth/2-len(g.banner)*3, baseHeight/2-40)
	}
}

func drawHeading(screen *ebiten.Image, x, y float32, facing, length float64, clr color.RGBA) {
	tx := x + float32(math.Sin(facing)*length)
	ty := y - float32(math.Cos(facing)*length)
	vector.StrokeLine(screen, x, y, tx, ty, 1.5, clr, true)
}

// parseTint decodes a "#rrggbb" level tint, falling back to a neutral slate.
func parseTint(tint string) color.RGBA {
	if len(tint) != 7 || tint[0] != '#' {
		return colornames.Slategray
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(tint[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return colornames.Slategray
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func lighten(c color.RGBA) color.RGBA {
	bump := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.RGBA{R: bump(c.R), G: bump(c.G), B: bump(c.B), A: 255}
}
