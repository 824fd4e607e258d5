// Package ebitenhost runs a camrig rig inside an Ebitengine game loop and
// draws simple world-space wireframes through the rig's camera.
//
//	game := ebitenhost.NewGame(rig)
//	game.OnUpdate = func(dt float64) error {
//		camrig.DriverMut[*camrig.Position[camrig.RightHanded]](rig).Translate(move)
//		return nil
//	}
//	game.OnDraw = func(screen *ebiten.Image, cam *camrig.Camera[camrig.RightHanded]) {
//		ebitenhost.DrawGrid(screen, cam, mgl64.Vec3{}, 10, 1, color.Gray{Y: 96})
//	}
//	if err := ebitenhost.Run(game, ebitenhost.RunConfig{Title: "rig", Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// F1 toggles the stats overlay and F12 queues a screenshot.
package ebitenhost
