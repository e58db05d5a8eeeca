//go:build ebiten

package window

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/registry"
)

// Debug font glyph size used by ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// keyBindings maps window keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
}

// app adapts a registry.Game to ebiten.Game.
type app struct {
	game   registry.Game
	driver *driver
	canvas *imageCanvas
	frame  core.InputFrame
}

// Run opens a window and plays game until it is closed or Esc is pressed.
func Run(game registry.Game, opts Options) error {
	opts = opts.withDefaults()

	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed})
	w, h := game.Viewport()

	a := &app{
		game:   game,
		driver: newDriver(game, opts.Store, opts.Logger),
		canvas: newImageCanvas(w, h),
		frame:  core.NewInputFrame(),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(w*opts.Scale), int(h*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	opts.Logger.Info("opening window", "game", game.ID(), "tps", opts.TickRate, "seed", opts.Seed)
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update reads this tick's key presses and forwards them to the driver.
func (a *app) Update() error {
	a.frame.Clear()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.frame.Set(b.action)
		}
	}

	if a.driver.Frame(a.frame) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game. The logical viewport equals the layout size, so
// Ebitengine handles window scaling.
func (a *app) Draw(screen *ebiten.Image) {
	a.canvas.dst = screen
	a.game.Render(a.canvas)
}

// Layout fixes the logical screen to the game's viewport.
func (a *app) Layout(_, _ int) (int, int) {
	w, h := a.game.Viewport()
	return int(w), int(h)
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// imageCanvas implements core.Canvas on an *ebiten.Image.
type imageCanvas struct {
	dst  *ebiten.Image
	w, h float64
	text *ebiten.Image // Scratch surface for tinting debug-font text
}

func newImageCanvas(w, h float64) *imageCanvas {
	return &imageCanvas{
		w:    w,
		h:    h,
		text: ebiten.NewImage(int(math.Ceil(w)), glyphH),
	}
}

func (c *imageCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *imageCanvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c *imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), true)
}

func (c *imageCanvas) FillCircle(cx, cy, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), col.RGBA(), true)
}

func (c *imageCanvas) FillPolygon(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	rgba := col.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(rgba.R) / 0xff
		vs[i].ColorG = float32(rgba.G) / 0xff
		vs[i].ColorB = float32(rgba.B) / 0xff
		vs[i].ColorA = float32(rgba.A) / 0xff
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillText prints with the debug font, which only draws white, onto a
// scratch image and tints it while compositing.
func (c *imageCanvas) FillText(x, y float64, text string, col core.Color) {
	c.text.Clear()
	ebitenutil.DebugPrintAt(c.text, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	c.dst.DrawImage(c.text, op)
}

func (c *imageCanvas) MeasureText(text string) float64 {
	return float64(len([]rune(text)) * glyphW)
}

func (c *imageCanvas) LineHeight() float64 {
	return glyphH
}
