package client

import (
	"log"
	"sync"
	"time"

	"TerraVox/shared/proto/tvnet"
	"TerraVox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gorilla/websocket"
)

// NetworkClient lida com a comunicação com o Servidor TerraVox.
// Os callbacks rodam na goroutine de leitura; o App os usa só para
// enfileirar trabalho para a thread principal.
type NetworkClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex

	OnStatus      func(status *tvnet.ServerStatus)
	OnChunkMesh   func(msg *tvnet.ChunkMesh)
	OnChunkRemove func(coord util.ChunkCoord)
}

func NewNetworkClient(url string) *NetworkClient {
	return &NetworkClient{url: url}
}

// Connect disca com retry: o servidor pode estar subindo junto.
func (c *NetworkClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, c.url)
		c.conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Printf("[Network] ERRO CRÍTICO após %d tentativas: %v", maxRetries, err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

func (c *NetworkClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// SendFocus informa ao servidor o novo ponto de interesse.
func (c *NetworkClient) SendFocus(pos rl.Vector3) {
	if !c.IsConnected() {
		return
	}

	data, err := tvnet.Encode(tvnet.MsgFocusUpdate, &tvnet.FocusUpdate{X: pos.X, Y: pos.Y, Z: pos.Z})
	if err != nil {
		log.Printf("[Network] Erro ao serializar foco: %v", err)
		return
	}

	c.mu.Lock()
	err = c.conn.WriteMessage(websocket.BinaryMessage, data)
	if err != nil {
		c.connected = false
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("[Network] Erro ao enviar foco: %v", err)
	}
}

func (c *NetworkClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		if c.conn != nil {
			c.conn.Close()
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão perdida: %v", err)
			break
		}

		env, err := tvnet.Decode(message)
		if err != nil {
			log.Printf("[Network] Erro ao desempacotar envelope: %v", err)
			continue
		}

		c.handleMessage(env)
	}
}

func (c *NetworkClient) handleMessage(env *tvnet.Envelope) {
	switch env.Type {
	case tvnet.MsgServerStatus:
		var status tvnet.ServerStatus
		if err := env.DecodePayload(&status); err != nil {
			log.Printf("[Network] ServerStatus inválido: %v", err)
			return
		}
		log.Printf("[Network] %s (extensão %.1f, %d níveis)", status.Message, status.Extent, status.Levels)
		if c.OnStatus != nil {
			c.OnStatus(&status)
		}
	case tvnet.MsgChunkMesh:
		var msg tvnet.ChunkMesh
		if err := env.DecodePayload(&msg); err != nil {
			log.Printf("[Network] ChunkMesh inválido: %v", err)
			return
		}
		if c.OnChunkMesh != nil {
			c.OnChunkMesh(&msg)
		}
	case tvnet.MsgChunkRemove:
		var msg tvnet.ChunkRemove
		if err := env.DecodePayload(&msg); err != nil {
			log.Printf("[Network] ChunkRemove inválido: %v", err)
			return
		}
		if c.OnChunkRemove != nil {
			c.OnChunkRemove(msg.Coord)
		}
	}
}
