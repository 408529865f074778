package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var skyColor = rl.Color{R: 135, G: 175, B: 215, A: 255}

// draw renderiza o frame completo: cena 3D e HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	rl.BeginMode3D(a.Cam.RLCamera)
	a.renderer.Draw(a.Cam.RLCamera, a.extent())
	rl.EndMode3D()

	if a.Config.ShowDebugInfo {
		a.drawDebugInfo()
	}

	if a.State == StatePaused {
		a.drawPauseOverlay()
	}

	rl.EndDrawing()
}

func (a *App) drawDebugInfo() {
	focus := a.Cam.Focus()

	lines := []string{
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Foco: (%.1f, %.1f, %.1f)", focus.X, focus.Y, focus.Z),
		fmt.Sprintf("Chunks na GPU: %d", a.renderer.Count()),
	}
	if a.localMode {
		lines = append(lines, fmt.Sprintf("Chunks no terreno: %d", a.mgr.Count()))
	} else {
		connected := a.netClient != nil && a.netClient.IsConnected()
		lines = append(lines,
			fmt.Sprintf("Servidor: %s (conectado: %v)", a.Config.ServerURL, connected),
			fmt.Sprintf("Malhas na fila: %d", a.pendingMeshes()))
	}
	lines = append(lines, "[F1] debug  [G] wireframe  [Tab] projeção  [ESC] pausa")

	y := int32(10)
	for _, line := range lines {
		rl.DrawText(line, 10, y, 18, rl.RayWhite)
		y += 22
	}
}

func (a *App) drawPauseOverlay() {
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.Color{A: 140})

	msg := "PAUSADO - ESC para voltar"
	size := int32(28)
	tw := rl.MeasureText(msg, size)
	rl.DrawText(msg, (int32(w)-tw)/2, int32(h)/2-size, size, rl.RayWhite)
}
