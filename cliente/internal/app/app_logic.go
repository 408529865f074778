package app

import (
	"time"

	"TerraVox/shared/terrain"
)

// uploadBudget limita o tempo por frame gasto enviando malhas para a
// GPU. O resto fica para o frame seguinte, evitando stutter quando o
// foco cruza uma fronteira de LOD e vários chunks regeram juntos.
const uploadBudget = 6 * time.Millisecond

// updateLocalTerrain avança o terreno local e sobe malhas novas.
func (a *App) updateLocalTerrain(dt float32) {
	if err := a.mgr.Tick(dt, a.Cam.Focus()); err != nil {
		return
	}

	start := time.Now()
	extent := a.mgr.Extent()

	a.mgr.ForEach(func(ch *terrain.Chunk) {
		if time.Since(start) > uploadBudget {
			return
		}
		if a.renderer.ModelVersion(ch.Coord) != ch.Version() {
			a.renderer.Upload(ch.Coord, ch.Level(), ch.Version(), ch.Coord.Origin(extent), ch.Geometry())
		}
	})

	// Modelos de chunks que saíram do conjunto visível.
	for _, coord := range a.renderer.Coords() {
		if _, ok := a.mgr.ChunkAt(coord); !ok {
			a.renderer.Remove(coord)
		}
	}
}

// updateRemoteTerrain drena as filas alimentadas pela goroutine de rede
// e reenvia o foco quando ele anda.
func (a *App) updateRemoteTerrain(dt float32) {
	a.focusTimer += dt
	if a.focusTimer >= 0.25 && a.netClient != nil {
		a.focusTimer = 0
		a.netClient.SendFocus(a.Cam.Focus())
	}

	start := time.Now()
	extent := a.extent()

	for time.Since(start) <= uploadBudget {
		msg, ok := a.meshQueue.Pop()
		if !ok {
			break
		}
		origin := msg.Coord.Origin(extent)
		a.renderer.Upload(msg.Coord, msg.Level, msg.Version, origin, msg.Geometry())
	}

	for {
		coord, ok := a.removeQueue.Pop()
		if !ok {
			break
		}
		a.renderer.Remove(coord)
	}
}

// pendingMeshes informa quantas malhas remotas aguardam upload.
func (a *App) pendingMeshes() int {
	if a.localMode {
		return 0
	}
	return a.meshQueue.Len()
}
