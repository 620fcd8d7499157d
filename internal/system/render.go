// internal/system/render.go
package system

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// floatingText is a short-lived number drifting up from a hit or a kill.
type floatingText struct {
	text  string
	x, y  float64
	timer float64
	color color.RGBA
}

// pulseRing is an expanding circle marking a slow pulse or a storm drop.
type pulseRing struct {
	x, y      float64
	maxRadius float64
	timer     float64
	duration  float64
	color     color.RGBA
}

const (
	floatingTextLife = 0.8 // seconds
	floatingTextRise = 30.0
)

// RenderSystem draws the simulation snapshot and the transient visual
// effects the combat systems request over the event stream. It never reads
// simulation state directly.
type RenderSystem struct {
	fontFace font.Face

	texts  []floatingText
	pulses []pulseRing
}

func NewRenderSystem(dispatcher *event.Dispatcher) *RenderSystem {
	s := &RenderSystem{fontFace: basicfont.Face7x13}

	dispatcher.Subscribe(event.DamageNumberRequest, event.ListenerFunc(s.onDamageNumber))
	dispatcher.Subscribe(event.GoldNumberRequest, event.ListenerFunc(s.onGoldNumber))
	dispatcher.Subscribe(event.PulseEffectRequest, event.ListenerFunc(s.onPulse))
	dispatcher.Subscribe(event.ExplosionRequest, event.ListenerFunc(s.onExplosion))
	return s
}

func (s *RenderSystem) onDamageNumber(ev event.Event) {
	p, ok := ev.Data.(event.DamageNumberPayload)
	if !ok {
		return
	}
	s.texts = append(s.texts, floatingText{
		text:  fmt.Sprintf("%.0f", p.Amount),
		x:     p.X,
		y:     p.Y,
		timer: floatingTextLife,
		color: config.TextLightColor,
	})
}

func (s *RenderSystem) onGoldNumber(ev event.Event) {
	p, ok := ev.Data.(event.DamageNumberPayload)
	if !ok {
		return
	}
	s.texts = append(s.texts, floatingText{
		text:  fmt.Sprintf("+%.0f", p.Amount),
		x:     p.X,
		y:     p.Y,
		timer: floatingTextLife,
		color: color.RGBA{255, 215, 0, 255},
	})
}

func (s *RenderSystem) onPulse(ev event.Event) {
	p, ok := ev.Data.(event.PulsePayload)
	if !ok {
		return
	}
	s.pulses = append(s.pulses, pulseRing{
		x:         p.X,
		y:         p.Y,
		maxRadius: p.Radius,
		timer:     0.4,
		duration:  0.4,
		color:     config.ZoneStrokeColor,
	})
}

func (s *RenderSystem) onExplosion(ev event.Event) {
	p, ok := ev.Data.(event.ExplosionPayload)
	if !ok {
		return
	}
	s.pulses = append(s.pulses, pulseRing{
		x:         p.X,
		y:         p.Y,
		maxRadius: p.Radius,
		timer:     0.25,
		duration:  0.25,
		color:     color.RGBA{255, 160, 60, 200},
	})
}

// Update ages the transient effects. The timers run on real frame time, not
// simulation time, so they keep animating while the game is paused.
func (s *RenderSystem) Update(dt float64) {
	live := s.texts[:0]
	for _, t := range s.texts {
		t.timer -= dt
		if t.timer > 0 {
			live = append(live, t)
		}
	}
	s.texts = live

	rings := s.pulses[:0]
	for _, p := range s.pulses {
		p.timer -= dt
		if p.timer > 0 {
			rings = append(rings, p)
		}
	}
	s.pulses = rings
}

// Draw renders the whole frame from a snapshot.
func (s *RenderSystem) Draw(screen *ebiten.Image, snap *interfaces.Snapshot) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen)
	s.drawPath(screen, snap.Path)

	for _, z := range snap.Zones {
		vector.DrawFilledCircle(screen, float32(z.X), float32(z.Y), float32(z.Radius), config.ZoneColor, true)
		vector.StrokeCircle(screen, float32(z.X), float32(z.Y), float32(z.Radius), 1.5, config.ZoneStrokeColor, true)
	}

	for _, t := range snap.Towers {
		x := float32(t.Col) * config.CellSize
		y := float32(t.Row) * config.CellSize
		vector.DrawFilledRect(screen, x+3, y+3, config.CellSize-6, config.CellSize-6, t.Color, true)
		for i := 1; i < t.Level; i++ {
			vector.DrawFilledRect(screen, x+4+float32(i-1)*5, y+config.CellSize-7, 3, 3, config.TextLightColor, true)
		}
	}

	for _, e := range snap.Enemies {
		c := e.Color
		if e.Slowed {
			c = color.RGBA{100, 170, 255, 255}
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), config.EnemyRadius, c, true)
		s.drawHealthBar(screen, e)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 3, config.ProjectileColor, true)
	}

	for _, r := range s.pulses {
		progress := 1 - r.timer/r.duration
		radius := float32(r.maxRadius * progress)
		c := r.color
		c.A = uint8(float64(c.A) * (1 - progress))
		vector.StrokeCircle(screen, float32(r.x), float32(r.y), radius, 2, c, true)
	}

	for _, t := range s.texts {
		rise := floatingTextRise * (1 - t.timer/floatingTextLife)
		text.Draw(screen, t.text, s.fontFace, int(t.x)-len(t.text)*3, int(t.y-rise), t.color)
	}

	s.drawHUD(screen, snap)
}

// DrawRangeRing marks a tower's reach, used while placing or inspecting.
func (s *RenderSystem) DrawRangeRing(screen *ebiten.Image, x, y, radius float64) {
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1, config.RangeRingColor, true)
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	for col := 0; col <= config.GridCols; col++ {
		x := float32(col) * config.CellSize
		vector.StrokeLine(screen, x, 0, x, config.ScreenHeight, 1, config.GridLineColor, false)
	}
	for row := 0; row <= config.GridRows; row++ {
		y := float32(row) * config.CellSize
		vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 1, config.GridLineColor, false)
	}
}

func (s *RenderSystem) drawPath(screen *ebiten.Image, path []utils.Vec) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.CellSize-8, config.PathColor, false)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, e interfaces.EnemyView) {
	if e.MaxHP <= 0 || e.Health >= e.MaxHP {
		return
	}
	const barW, barH = 22.0, 3.0
	x := float32(e.X) - barW/2
	y := float32(e.Y) - config.EnemyRadius - 7
	vector.DrawFilledRect(screen, x, y, barW, barH, config.HealthBarBack, false)
	frac := float32(e.Health / e.MaxHP)
	vector.DrawFilledRect(screen, x, y, barW*frac, barH, config.HealthBarFront, false)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, snap *interfaces.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, 20, config.HUDPanelColor, false)
	hud := fmt.Sprintf("Wave %d   Credits %d   Lives %d", snap.Wave, snap.Credits, snap.Lives)
	text.Draw(screen, hud, s.fontFace, 8, 14, config.TextLightColor)

	if snap.GameOver {
		msg := "GAME OVER"
		text.Draw(screen, msg, s.fontFace, config.ScreenWidth/2-len(msg)*4, config.ScreenHeight/2, color.RGBA{255, 80, 80, 255})
	}
}
