package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/camrig"
)

// Game adapts a rig to ebiten.Game. Each tick it runs OnUpdate, advances the
// rig and points Camera at the result; Draw hands the camera to OnDraw.
type Game[H camrig.Handedness] struct {
	Rig    *camrig.Rig[H]
	Camera *camrig.Camera[H]

	// FixedDelta is the frame time passed to the rig. Zero means 1/TPS.
	FixedDelta float64

	// OnUpdate runs before the rig update. A non-nil error stops the game.
	OnUpdate func(dt float64) error
	// OnDraw renders the frame.
	OnDraw func(screen *ebiten.Image, cam *camrig.Camera[H])

	// ShowStats draws the FPS and camera overlay.
	ShowStats bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
}

// NewGame wraps rig with a default camera whose viewport follows the window.
func NewGame[H camrig.Handedness](rig *camrig.Rig[H]) *Game[H] {
	cam := camrig.NewCamera[H](camrig.Rect{})
	cam.Follow(rig)
	return &Game[H]{
		Rig:           rig,
		Camera:        cam,
		ScreenshotDir: "screenshots",
	}
}

// Delta returns the frame time used by Update.
func (g *Game[H]) Delta() float64 {
	if g.FixedDelta > 0 {
		return g.FixedDelta
	}
	return 1.0 / float64(ebiten.TPS())
}

// Update implements ebiten.Game.
func (g *Game[H]) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.ShowStats = !g.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("frame")
	}

	dt := g.Delta()
	if g.OnUpdate != nil {
		if err := g.OnUpdate(dt); err != nil {
			return err
		}
	}
	g.Rig.Update(dt)
	g.Camera.Follow(g.Rig)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game[H]) Draw(screen *ebiten.Image) {
	if g.OnDraw != nil {
		g.OnDraw(screen, g.Camera)
	}
	if g.ShowStats {
		DrawStats(screen, g.Rig.FinalTransform)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The camera viewport tracks the window size.
func (g *Game[H]) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := camrig.Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if g.Camera.Viewport != vp {
		g.Camera.Viewport = vp
		g.Camera.MarkDirty()
	}
	return outsideWidth, outsideHeight
}
