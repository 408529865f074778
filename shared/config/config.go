package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do TerraVox.
type Config struct {
	// Janela (Cliente)
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// TerraVox Server (usado pelo Cliente; vazio = geração local)
	ServerURL string `json:"server_url"`

	// Servidor
	ListenAddr     string  `json:"listen_addr"`
	ServerTickRate float32 `json:"server_tick_rate"`

	// Grade base de um chunk
	CellsX   int32   `json:"cells_x"`
	CellsY   int32   `json:"cells_y"`
	CellsZ   int32   `json:"cells_z"`
	CellSize float32 `json:"cell_size"`
	IsoLevel float32 `json:"iso_level"`
	Stride   int32   `json:"stride"`

	// Conjunto visível (raio em chunks, por eixo)
	ViewRadiusX int32 `json:"view_radius_x"`
	ViewRadiusY int32 `json:"view_radius_y"`
	ViewRadiusZ int32 `json:"view_radius_z"`

	// LOD adaptativo
	AdaptiveLOD     bool       `json:"adaptive_lod"`
	LODThresholds   []float32  `json:"lod_thresholds"`
	LODStrides      []int32    `json:"lod_strides"`
	LODCellProfiles [][3]int32 `json:"lod_cell_profiles"`
	LODInterval     float32    `json:"lod_interval_seconds"`

	// Pool de chunks
	PoolPrewarm int32 `json:"pool_prewarm"`
	PoolMax     int32 `json:"pool_max"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Campo de densidade da demo
	Seed int64 `json:"seed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	WireframeMode bool `json:"wireframe_mode"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "TerraVox",
		Fullscreen:   false,
		TargetFPS:    60,

		ServerURL:      "",
		ListenAddr:     ":8080",
		ServerTickRate: 10.0,

		CellsX:   16,
		CellsY:   16,
		CellsZ:   16,
		CellSize: 1.0,
		IsoLevel: 0.0,
		Stride:   1,

		ViewRadiusX: 4,
		ViewRadiusY: 2, // extensão vertical achatada por padrão
		ViewRadiusZ: 4,

		AdaptiveLOD:   true,
		LODThresholds: []float32{48.0, 96.0, 192.0},
		LODStrides:    []int32{1, 2, 4},
		LODCellProfiles: [][3]int32{
			{16, 16, 16},
			{8, 8, 8},
			{4, 4, 4},
		},
		LODInterval: 0.5,

		// O conjunto visível padrão tem 9x5x9 = 405 chunks; o teto do
		// pool precisa cobri-lo com folga.
		PoolPrewarm: 32,
		PoolMax:     512,

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,

		Seed: 1337,

		ShowDebugInfo: true,
		WireframeMode: false,
	}
}

// Normalize força os campos numéricos para valores válidos.
// Valores inválidos são silenciosamente ajustados ao vizinho válido mais
// próximo em vez de falharem a chamada (política de leniência).
func (c *Config) Normalize() {
	if c.CellsX < 1 {
		c.CellsX = 1
	}
	if c.CellsY < 1 {
		c.CellsY = 1
	}
	if c.CellsZ < 1 {
		c.CellsZ = 1
	}
	if c.CellSize <= 0 {
		c.CellSize = 1.0
	}
	if c.Stride < 1 {
		c.Stride = 1
	}
	if c.ViewRadiusX < 0 {
		c.ViewRadiusX = 0
	}
	if c.ViewRadiusY < 0 {
		c.ViewRadiusY = 0
	}
	if c.ViewRadiusZ < 0 {
		c.ViewRadiusZ = 0
	}
	if c.LODInterval <= 0 {
		c.LODInterval = 0.5
	}
	if c.PoolMax < 0 {
		c.PoolMax = 0
	}
	if c.PoolPrewarm < 0 {
		c.PoolPrewarm = 0
	}
	if c.PoolPrewarm > c.PoolMax {
		c.PoolPrewarm = c.PoolMax
	}
	if c.ServerTickRate <= 0 {
		c.ServerTickRate = 10.0
	}

	// As três listas de LOD andam em paralelo; truncamos para o menor
	// comprimento comum para nunca indexar fora delas.
	n := len(c.LODThresholds)
	if len(c.LODStrides) < n {
		n = len(c.LODStrides)
	}
	if len(c.LODCellProfiles) < n {
		n = len(c.LODCellProfiles)
	}
	c.LODThresholds = c.LODThresholds[:n]
	c.LODStrides = c.LODStrides[:n]
	c.LODCellProfiles = c.LODCellProfiles[:n]
	for i := range c.LODStrides {
		if c.LODStrides[i] < 1 {
			c.LODStrides[i] = 1
		}
		for k := 0; k < 3; k++ {
			if c.LODCellProfiles[i][k] < 1 {
				c.LODCellProfiles[i][k] = 1
			}
		}
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		cfg.Normalize()
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		cfg = DefaultConfig()
	}

	cfg.Normalize()
	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
