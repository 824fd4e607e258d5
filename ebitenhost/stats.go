package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/camrig"
)

// DrawStats prints FPS, TPS and the camera placement in the top-left corner.
func DrawStats[H camrig.Handedness](screen *ebiten.Image, xf camrig.Transform[H]) {
	ebitenutil.DebugPrint(screen, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), xf))
}

func statsText[H camrig.Handedness](fps, tps float64, xf camrig.Transform[H]) string {
	p, f := xf.Position, xf.Forward()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npos: %.2f %.2f %.2f\nfwd: %.2f %.2f %.2f",
		fps, tps, p[0], p[1], p[2], f[0], f[1], f[2])
}
