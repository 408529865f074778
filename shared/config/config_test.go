package config

import "testing"

func TestDefaultConfigIsNormalized(t *testing.T) {
	cfg := DefaultConfig()
	before := *cfg
	cfg.Normalize()

	if cfg.CellsX != before.CellsX || cfg.CellSize != before.CellSize {
		t.Error("Normalize alterou uma configuração padrão válida")
	}
	if len(cfg.LODThresholds) != len(cfg.LODStrides) || len(cfg.LODStrides) != len(cfg.LODCellProfiles) {
		t.Error("listas de LOD padrão desalinhadas")
	}
}

// O pool padrão cobre o conjunto visível padrão inteiro: ninguém fica
// sem malha com a configuração de fábrica.
func TestDefaultPoolCoversVisibleSet(t *testing.T) {
	cfg := DefaultConfig()
	visible := (2*cfg.ViewRadiusX + 1) * (2*cfg.ViewRadiusY + 1) * (2*cfg.ViewRadiusZ + 1)
	if cfg.PoolMax < visible {
		t.Fatalf("pool padrão %d menor que o conjunto visível padrão %d", cfg.PoolMax, visible)
	}
}

// Valores inválidos são corrigidos silenciosamente, nunca rejeitados.
func TestNormalizeClampsInvalidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellsX = 0
	cfg.CellsY = -4
	cfg.CellSize = -1
	cfg.Stride = 0
	cfg.ViewRadiusX = -2
	cfg.LODInterval = 0
	cfg.PoolMax = -1
	cfg.PoolPrewarm = 50
	cfg.ServerTickRate = 0

	cfg.Normalize()

	if cfg.CellsX != 1 || cfg.CellsY != 1 {
		t.Errorf("células: veio %d,%d", cfg.CellsX, cfg.CellsY)
	}
	if cfg.CellSize != 1.0 {
		t.Errorf("cellSize: veio %v", cfg.CellSize)
	}
	if cfg.Stride != 1 {
		t.Errorf("stride: veio %d", cfg.Stride)
	}
	if cfg.ViewRadiusX != 0 {
		t.Errorf("viewRadiusX: veio %d", cfg.ViewRadiusX)
	}
	if cfg.LODInterval <= 0 {
		t.Errorf("lodInterval: veio %v", cfg.LODInterval)
	}
	if cfg.PoolMax != 0 || cfg.PoolPrewarm != 0 {
		t.Errorf("pool: veio prewarm %d, max %d (prewarm nunca excede o max)", cfg.PoolPrewarm, cfg.PoolMax)
	}
	if cfg.ServerTickRate <= 0 {
		t.Errorf("tickRate: veio %v", cfg.ServerTickRate)
	}
}

// As listas paralelas de LOD são truncadas para o menor comprimento
// comum, nunca indexadas fora.
func TestNormalizeTruncatesLODLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LODThresholds = []float32{10, 20, 30, 40}
	cfg.LODStrides = []int32{1, 2}
	cfg.LODCellProfiles = [][3]int32{{16, 16, 16}, {8, 8, 8}, {4, 4, 4}}

	cfg.Normalize()

	if len(cfg.LODThresholds) != 2 || len(cfg.LODStrides) != 2 || len(cfg.LODCellProfiles) != 2 {
		t.Fatalf("listas: veio %d/%d/%d, esperava 2/2/2",
			len(cfg.LODThresholds), len(cfg.LODStrides), len(cfg.LODCellProfiles))
	}
}

func TestNormalizeFixesLODEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LODThresholds = []float32{10}
	cfg.LODStrides = []int32{0}
	cfg.LODCellProfiles = [][3]int32{{0, -1, 8}}

	cfg.Normalize()

	if cfg.LODStrides[0] != 1 {
		t.Errorf("stride de nível: veio %d", cfg.LODStrides[0])
	}
	if cfg.LODCellProfiles[0] != [3]int32{1, 1, 8} {
		t.Errorf("perfil de nível: veio %v", cfg.LODCellProfiles[0])
	}
}
