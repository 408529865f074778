package app

import (
	"TerraVox/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa o teclado e repassa o resto para a câmera.
func (a *App) updateInput(dt float32) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StatePaused {
			a.State = StateViewing
		} else {
			a.State = StatePaused
		}
		return
	}
	if a.State == StatePaused {
		return
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.WireframeMode = !a.Config.WireframeMode
		a.renderer.Wireframe = a.Config.WireframeMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		if a.Cam.Mode == camera.ModePerspective {
			a.Cam.SetMode(camera.ModeOrthographic)
		} else {
			a.Cam.SetMode(camera.ModePerspective)
		}
	}

	a.Cam.HandleInput(dt)
}
