package app

import (
	"log"
	"sync"

	"TerraVox/cliente/internal/camera"
	"TerraVox/cliente/internal/client"
	"TerraVox/cliente/internal/render"
	"TerraVox/shared/config"
	"TerraVox/shared/density"
	"TerraVox/shared/proto/tvnet"
	"TerraVox/shared/terrain"
	"TerraVox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Visualizando o terreno
	StatePaused                  // Pausado
)

// App é a aplicação principal do TerraVox. Dois modos de operação:
// local (o terreno roda aqui mesmo) ou remoto (as malhas chegam do
// servidor via WebSocket e ServerURL configurada).
type App struct {
	Config *config.Config
	State  AppState

	Cam      *camera.Controller
	renderer *render.Renderer

	// Modo local
	localMode bool
	mgr       *terrain.Manager

	// Modo remoto
	netClient    *client.NetworkClient
	meshQueue    *util.ThreadSafeQueue[*tvnet.ChunkMesh]
	removeQueue  *util.ThreadSafeQueue[util.ChunkCoord]
	statusMu     sync.Mutex
	remoteExtent float32

	focusTimer float32
	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:      cfg,
		State:       StateViewing,
		localMode:   cfg.ServerURL == "",
		meshQueue:   util.NewThreadSafeQueue[*tvnet.ChunkMesh](),
		removeQueue: util.NewThreadSafeQueue[util.ChunkCoord](),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	a.Cam = camera.New()
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.RotateSpeed = a.Config.CameraSensitivity * 6.0
	a.Cam.SetTarget(rl.Vector3{Y: float32(a.Config.CellsY) * a.Config.CellSize * 0.5})

	a.renderer = render.NewRenderer()
	a.renderer.Wireframe = a.Config.WireframeMode

	log.Printf("[TerraVox] Janela inicializada: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	if a.localMode {
		a.mgr = &terrain.Manager{}
		field := density.NewNoiseTerrain(a.Config.Seed)
		if err := a.mgr.Init(a.Config, field); err != nil {
			log.Printf("[App] Erro fatal ao inicializar o terreno local: %v", err)
			rl.CloseWindow()
			return
		}
		log.Printf("[App] Modo local: seed %d", a.Config.Seed)
	} else {
		a.remoteExtent = float32(a.Config.CellsX) * a.Config.CellSize
		go a.connectServer()
	}

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()

	switch a.State {
	case StateViewing:
		a.updateInput(dt)
		a.Cam.Update(dt)
		if a.localMode {
			a.updateLocalTerrain(dt)
		} else {
			a.updateRemoteTerrain(dt)
		}
	case StatePaused:
		a.updateInput(dt)
	}
}

// extent retorna a extensão de chunk em vigor (local ou anunciada pelo
// servidor).
func (a *App) extent() float32 {
	if a.localMode {
		return a.mgr.Extent()
	}
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	return a.remoteExtent
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.localMode {
		a.mgr.Shutdown()
	}
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
