package main

import (
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"TerraVox/shared/config"
	"TerraVox/shared/density"
	"TerraVox/shared/proto/tvnet"
	"TerraVox/shared/terrain"
	"TerraVox/shared/util"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub gerencia as conexões WebSocket ativas
type Hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 4096), // Bufferizado para evitar deadlocks e bloqueios
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Recuperado de pânico fatal: %v", r)
		}
	}()

	for {
		select {
		case client, ok := <-h.register:
			if !ok {
				return
			}
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("Cliente registrado: %s", client.RemoteAddr())
		case client, ok := <-h.unregister:
			if !ok {
				return
			}
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("Cliente desregistrado: %s", client.RemoteAddr())
			}
			h.mu.Unlock()
		case message, ok := <-h.broadcast:
			if !ok {
				return
			}
			h.mu.Lock()
			// Lista de alvos copiada para escrever fora do lock do hub
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.BinaryMessage, message)
				if err != nil {
					log.Printf("Erro ao enviar para cliente %s: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
				target.lock.Unlock()
			}
		}
	}
}

// WriteSafe garante que apenas uma goroutine escreva no WebSocket por vez
func (h *Hub) WriteSafe(conn *websocket.Conn, data []byte) error {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()

	if !ok {
		return websocket.ErrCloseSent
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

// safeSend envia para o canal de broadcast protegendo contra pânicos de canal fechado
func (h *Hub) safeSend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Aviso: Falha ao enviar broadcast (canal fechado?): %v", r)
		}
	}()
	h.broadcast <- data
}

// HasClients informa se há alguém conectado.
func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

// meshCache guarda a última mensagem serializada de cada chunk. É o
// único estado do terreno visível fora do loop de simulação: clientes
// novos recebem o snapshot daqui, sem nunca tocarem o Manager.
type meshCache struct {
	mu   sync.Mutex
	data map[util.ChunkCoord][]byte
}

func newMeshCache() *meshCache {
	return &meshCache{data: make(map[util.ChunkCoord][]byte)}
}

func (c *meshCache) put(coord util.ChunkCoord, msg []byte) {
	c.mu.Lock()
	c.data[coord] = msg
	c.mu.Unlock()
}

func (c *meshCache) drop(coord util.ChunkCoord) {
	c.mu.Lock()
	delete(c.data, coord)
	c.mu.Unlock()
}

func (c *meshCache) snapshot() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, 0, len(c.data))
	for _, msg := range c.data {
		out = append(out, msg)
	}
	return out
}

// focusTracker guarda o último foco recebido de qualquer cliente. O
// núcleo do terreno é single-thread; só este ponto de troca é protegido.
type focusTracker struct {
	mu  sync.Mutex
	pos util.Vector3
}

func (f *focusTracker) set(pos util.Vector3) {
	f.mu.Lock()
	f.pos = pos
	f.mu.Unlock()
}

func (f *focusTracker) get() util.Vector3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func main() {
	// Working directory no diretório do executável, para config.json ao lado
	if exePath, err := os.Executable(); err == nil {
		os.Chdir(filepath.Dir(exePath))
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║       TerraVox SERVER v0.1.0         ║")
	log.Println("╚══════════════════════════════════════╝")

	cfg := config.Load()

	hub := newHub()
	go hub.run()

	field := density.NewNoiseTerrain(cfg.Seed)

	var mgr terrain.Manager
	if err := mgr.Init(cfg, field); err != nil {
		log.Fatalf("Erro fatal ao inicializar o terreno: %v", err)
	}

	tracker := &focusTracker{}
	tracker.set(util.Vector3{Y: float32(cfg.CellsY) * cfg.CellSize * 0.5})

	cache := newMeshCache()
	status := &tvnet.ServerStatus{
		Message: "Conectado ao Servidor TerraVox",
		Extent:  mgr.Extent(),
		Levels:  int32(mgr.LevelCount()),
		Seed:    cfg.Seed,
	}

	// Loop de simulação: o único lugar que toca o Manager.
	go runTerrain(cfg, &mgr, hub, tracker, cache)

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, status, cache, tracker)
	})

	addr := cfg.ListenAddr
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	// Verificação antecipada da porta para mensagem de erro melhor
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("ERRO CRÍTICO: não foi possível abrir %s (outra instância rodando?)", addr)
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
	ln.Close()

	log.Printf("Servidor TerraVox iniciado em %s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Erro fatal no servidor HTTP: %v", err)
	}
}

// runTerrain avança o terreno na taxa configurada e transmite as malhas
// que mudaram desde o último tick. Os envios são coalescidos por
// coordenada: se um chunk mudou duas vezes entre drenagens, só a versão
// mais recente vai pro fio.
func runTerrain(cfg *config.Config, mgr *terrain.Manager, hub *Hub, tracker *focusTracker, cache *meshCache) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Terrain-Loop] Recuperado de pânico: %v", r)
		}
	}()

	interval := time.Duration(float64(time.Second) / float64(cfg.ServerTickRate))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastSent := make(map[util.ChunkCoord]uint64)
	outbox := util.NewUniqueQueue[util.ChunkCoord, uint64]()

	last := time.Now()
	for range ticker.C {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := mgr.Tick(dt, tracker.get()); err != nil {
			log.Printf("[Terrain-Loop] Tick falhou: %v", err)
			continue
		}

		// Chunks novos ou regerados entram no outbox.
		seen := make(map[util.ChunkCoord]bool, mgr.Count())
		mgr.ForEach(func(ch *terrain.Chunk) {
			seen[ch.Coord] = true
			if lastSent[ch.Coord] != ch.Version() {
				outbox.Enqueue(ch.Coord, ch.Version())
			}
		})

		// Chunks que saíram do conjunto visível do servidor.
		for coord := range lastSent {
			if !seen[coord] {
				delete(lastSent, coord)
				cache.drop(coord)
				if data, err := tvnet.Encode(tvnet.MsgChunkRemove, &tvnet.ChunkRemove{Coord: coord}); err == nil {
					hub.safeSend(data)
				}
			}
		}

		for {
			coord, _, ok := outbox.Dequeue()
			if !ok {
				break
			}
			ch, exists := mgr.ChunkAt(coord)
			if !exists {
				continue
			}
			data, err := encodeChunk(ch)
			if err != nil {
				log.Printf("[Terrain-Loop] Erro ao serializar chunk %v: %v", coord, err)
				continue
			}
			cache.put(coord, data)
			if hub.HasClients() {
				hub.safeSend(data)
			}
			lastSent[coord] = ch.Version()
		}
	}
}

func encodeChunk(ch *terrain.Chunk) ([]byte, error) {
	msg := tvnet.NewChunkMesh(ch.Coord, ch.Level(), ch.Version(), ch.Transitions(), ch.Geometry())
	return tvnet.Encode(tvnet.MsgChunkMesh, msg)
}

// serveWs maneja requisições websocket do peer.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request, status *tvnet.ServerStatus, cache *meshCache, tracker *focusTracker) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Erro no upgrade do WebSocket: %v", err)
		return
	}
	hub.register <- conn

	if data, err := tvnet.Encode(tvnet.MsgServerStatus, status); err == nil {
		if err := hub.WriteSafe(conn, data); err != nil {
			log.Printf("Erro ao enviar status inicial: %v", err)
		}
	}

	// Snapshot inicial: todas as malhas já publicadas vão direto para
	// este cliente (os diffs seguintes chegam via broadcast).
	for _, data := range cache.snapshot() {
		// Falha de escrita aqui derruba a conexão no read loop
		_ = hub.WriteSafe(conn, data)
	}

	go func() {
		defer func() {
			hub.unregister <- conn
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("Erro ao ler mensagem: %v", err)
				break
			}

			env, err := tvnet.Decode(message)
			if err != nil {
				log.Printf("Erro ao desempacotar envelope: %v", err)
				continue
			}

			switch env.Type {
			case tvnet.MsgFocusUpdate:
				var focus tvnet.FocusUpdate
				if err := env.DecodePayload(&focus); err != nil {
					log.Printf("Erro ao ler FocusUpdate: %v", err)
					continue
				}
				tracker.set(util.Vector3{X: focus.X, Y: focus.Y, Z: focus.Z})
			}
		}
	}()
}
