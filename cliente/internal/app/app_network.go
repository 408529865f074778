package app

import (
	"log"

	"TerraVox/cliente/internal/client"
	"TerraVox/shared/proto/tvnet"
	"TerraVox/shared/util"
)

// connectServer conecta ao servidor TerraVox em background. Os callbacks
// rodam na goroutine de rede e só enfileiram; o upload acontece na
// thread principal dentro do budget de frame.
func (a *App) connectServer() {
	a.netClient = client.NewNetworkClient(a.Config.ServerURL)

	a.netClient.OnStatus = func(status *tvnet.ServerStatus) {
		a.statusMu.Lock()
		if status.Extent > 0 {
			a.remoteExtent = status.Extent
		}
		a.statusMu.Unlock()
	}
	a.netClient.OnChunkMesh = func(msg *tvnet.ChunkMesh) {
		a.meshQueue.Push(msg)
	}
	a.netClient.OnChunkRemove = func(coord util.ChunkCoord) {
		a.removeQueue.Push(coord)
	}

	if err := a.netClient.Connect(); err != nil {
		log.Printf("[App] Sem conexão com o servidor: %v", err)
		return
	}

	// Primeiro foco dispara o streaming do snapshot ao redor do cliente.
	a.netClient.SendFocus(a.Cam.Focus())
}
