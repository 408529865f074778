package terrain

import (
	"testing"

	"TerraVox/shared/config"
	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

// emptyField é um campo uniforme vazio: gera malhas vazias rapidamente,
// deixando os testes focarem no ciclo de vida e não na geometria.
var emptyField = density.FieldFunc(func(x, y, z float32) float32 { return 1 })

// lineConfig monta uma configuração de teste com o conjunto visível
// restrito ao eixo X: extensão de chunk 16, dois níveis de LOD.
func lineConfig(radiusX int32, thresholds []float32) *config.Config {
	cfg := config.DefaultConfig()
	cfg.CellsX, cfg.CellsY, cfg.CellsZ = 4, 4, 4
	cfg.CellSize = 4.0 // extensão 16
	cfg.ViewRadiusX = radiusX
	cfg.ViewRadiusY = 0
	cfg.ViewRadiusZ = 0
	cfg.AdaptiveLOD = true
	cfg.LODThresholds = thresholds
	cfg.LODStrides = []int32{1, 2}
	cfg.LODCellProfiles = [][3]int32{{4, 4, 4}, {2, 2, 2}}
	cfg.LODInterval = 0.5
	cfg.PoolPrewarm = 8
	cfg.PoolMax = 64
	return cfg
}

func mustInit(t *testing.T, cfg *config.Config) *Manager {
	t.Helper()
	var m Manager
	if err := m.Init(cfg, emptyField); err != nil {
		t.Fatalf("Init falhou: %v", err)
	}
	return &m
}

func TestManagerInitNilField(t *testing.T) {
	var m Manager
	if err := m.Init(config.DefaultConfig(), nil); err != density.ErrNilField {
		t.Fatalf("esperava ErrNilField, veio %v", err)
	}
}

func TestManagerTickBeforeInit(t *testing.T) {
	var m Manager
	if err := m.Tick(1, util.Vector3{}); err != ErrNotInitialized {
		t.Fatalf("esperava ErrNotInitialized, veio %v", err)
	}
}

func TestManagerVisibleSet(t *testing.T) {
	cfg := lineConfig(2, []float32{1000})
	cfg.LODStrides = []int32{1}
	cfg.LODCellProfiles = [][3]int32{{4, 4, 4}}
	m := mustInit(t, cfg)
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	if got := m.Count(); got != 5 {
		t.Fatalf("conjunto visível: veio %d chunks, esperava 5", got)
	}
	for x := int32(-2); x <= 2; x++ {
		ch, ok := m.ChunkAt(util.NewChunkCoord(x, 0, 0))
		if !ok {
			t.Fatalf("chunk (%d,0,0) ausente", x)
		}
		if ch.State() != StateIdle {
			t.Errorf("chunk (%d,0,0) em %v, esperava Idle", x, ch.State())
		}
	}
}

// O conjunto visível acompanha o foco: chunks que saem do raio voltam ao
// pool e os que entram são configurados.
func TestManagerFocusMoves(t *testing.T) {
	m := mustInit(t, lineConfig(1, []float32{1000, 2000}))
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(-1, 0, 0)); !ok {
		t.Fatal("chunk (-1,0,0) deveria estar visível")
	}

	// Foco pula dois chunks para +X.
	if err := m.Tick(1, util.Vector3{X: 40, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(-1, 0, 0)); ok {
		t.Error("chunk (-1,0,0) deveria ter sido liberado")
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(3, 0, 0)); !ok {
		t.Error("chunk (3,0,0) deveria ter entrado")
	}
	if m.Count() != 3 {
		t.Errorf("conjunto visível: veio %d, esperava 3", m.Count())
	}
}

// Ticks dentro do intervalo de reavaliação não mexem no terreno.
func TestManagerIntervalGating(t *testing.T) {
	m := mustInit(t, lineConfig(1, []float32{1000, 2000}))
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	// Foco longe, mas dt acumulado abaixo de LODInterval: nada muda.
	if err := m.Tick(0.1, util.Vector3{X: 200, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(0, 0, 0)); !ok {
		t.Fatal("reavaliação rodou antes do intervalo")
	}

	// Completa o intervalo: agora recentra.
	if err := m.Tick(0.4, util.Vector3{X: 200, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(0, 0, 0)); ok {
		t.Fatal("chunk antigo deveria ter sido liberado após o intervalo")
	}
	if _, ok := m.ChunkAt(util.NewChunkCoord(12, 0, 0)); !ok {
		t.Fatal("chunk do novo centro ausente")
	}
}

func TestManagerLevelByDistance(t *testing.T) {
	m := mustInit(t, lineConfig(3, []float32{20, 1000}))
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	cases := []struct {
		x     int32
		level int32
	}{
		{0, 0},  // centro, distância 0
		{1, 0},  // centro do chunk a 16
		{2, 1},  // a 32, além do limiar 20
		{-3, 1}, // a 48
	}
	for _, tc := range cases {
		ch, ok := m.ChunkAt(util.NewChunkCoord(tc.x, 0, 0))
		if !ok {
			t.Fatalf("chunk (%d,0,0) ausente", tc.x)
		}
		if ch.Level() != tc.level {
			t.Errorf("chunk (%d,0,0): nível %d, esperava %d", tc.x, ch.Level(), tc.level)
		}
	}
}

// Oscilar o foco dentro da banda de ±10% ao redor do limiar não pode
// trocar o nível do chunk (sem "popping" na fronteira).
func TestManagerHysteresis(t *testing.T) {
	m := mustInit(t, lineConfig(8, []float32{100, 10000}))
	defer m.Shutdown()

	target := util.NewChunkCoord(6, 0, 0) // centro em x=104

	// Distância exatamente no limiar: nível fino.
	if err := m.Tick(0, util.Vector3{X: 4, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	ch, ok := m.ChunkAt(target)
	if !ok {
		t.Fatal("chunk alvo ausente")
	}
	if ch.Level() != 0 {
		t.Fatalf("nível inicial %d, esperava 0", ch.Level())
	}

	// Distância 106: acima do limiar mas dentro da banda, mantém o fino.
	if err := m.Tick(1, util.Vector3{X: -2, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if ch.Level() != 0 {
		t.Fatalf("dentro da banda subiu para %d", ch.Level())
	}

	// Distância 124: fora da banda, agora engrossa.
	if err := m.Tick(1, util.Vector3{X: -20, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if ch.Level() != 1 {
		t.Fatalf("fora da banda deveria engrossar, nível %d", ch.Level())
	}

	// De volta à distância 100: dentro da banda, mantém o grosso.
	if err := m.Tick(1, util.Vector3{X: 4, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if ch.Level() != 1 {
		t.Fatalf("histerese de volta falhou, nível %d", ch.Level())
	}

	// Distância 84: bem dentro do limiar, afina de novo.
	if err := m.Tick(1, util.Vector3{X: 20, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if ch.Level() != 0 {
		t.Fatalf("fora da banda deveria afinar, nível %d", ch.Level())
	}
}

// A face de transição aparece exatamente onde o vizinho registrado é
// estritamente mais grosso; vizinho ausente ou do mesmo nível não conta.
func TestManagerTransitionNeeds(t *testing.T) {
	m := mustInit(t, lineConfig(2, []float32{20, 1000}))
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	// Níveis ao longo do eixo: -2:1, -1:0, 0:0, 1:0, 2:1.
	fine, _ := m.ChunkAt(util.NewChunkCoord(1, 0, 0))
	if fine == nil {
		t.Fatal("chunk (1,0,0) ausente")
	}
	if !fine.Transitions().Has(util.FaceXPos) {
		t.Error("chunk fino colado no grosso deveria ter transição em +X")
	}
	if fine.Transitions().Has(util.FaceXNeg) {
		t.Error("vizinho do mesmo nível não pede transição")
	}
	if fine.Transitions().Has(util.FaceYPos) || fine.Transitions().Has(util.FaceZNeg) {
		t.Error("vizinho ausente não pede transição")
	}

	coarse, _ := m.ChunkAt(util.NewChunkCoord(2, 0, 0))
	if coarse == nil {
		t.Fatal("chunk (2,0,0) ausente")
	}
	if !coarse.Transitions().Empty() {
		t.Errorf("chunk grosso não costura contra o fino, tem %v", coarse.Transitions())
	}
}

// Trocar de nível muda contagem e tamanho de célula juntos: a extensão
// do chunk no mundo nunca muda.
func TestManagerExtentInvariant(t *testing.T) {
	m := mustInit(t, lineConfig(3, []float32{20, 1000}))
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	m.ForEach(func(ch *Chunk) {
		got := float32(ch.params.Cells[0]) * ch.params.CellSize
		if got != m.Extent() {
			t.Errorf("chunk %v (nível %d): extensão %v, esperava %v",
				ch.Coord, ch.Level(), got, m.Extent())
		}
	})
}

// Ticks repetidos com o mesmo foco não podem regerar nada.
func TestManagerStableNoRegen(t *testing.T) {
	m := mustInit(t, lineConfig(2, []float32{20, 1000}))
	defer m.Shutdown()

	focus := util.Vector3{X: 8, Y: 8, Z: 8}
	if err := m.Tick(0, focus); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	versions := make(map[util.ChunkCoord]uint64)
	m.ForEach(func(ch *Chunk) { versions[ch.Coord] = ch.Version() })

	for i := 0; i < 3; i++ {
		if err := m.Tick(1, focus); err != nil {
			t.Fatalf("Tick %d falhou: %v", i, err)
		}
	}

	m.ForEach(func(ch *Chunk) {
		if ch.Version() != versions[ch.Coord] {
			t.Errorf("chunk %v regerado sem motivo (versão %d -> %d)",
				ch.Coord, versions[ch.Coord], ch.Version())
		}
	})
}

// Pedidos de regeração no mesmo tick colapsam em um só, valendo os
// parâmetros mais recentes.
func TestChunkRegenCoalescing(t *testing.T) {
	var c Chunk
	c.configure(util.NewChunkCoord(0, 0, 0), 16, chunkParams{
		Cells: [3]int32{4, 4, 4}, CellSize: 4, Level: 0,
	})

	p1 := chunkParams{Cells: [3]int32{2, 2, 2}, CellSize: 8, Level: 1}
	p2 := chunkParams{Cells: [3]int32{4, 4, 4}, CellSize: 4, Level: 0}
	c.requestRegen(p1)
	c.requestRegen(p2)

	if err := c.generate(emptyField, 0); err != nil {
		t.Fatalf("generate falhou: %v", err)
	}
	if c.params != p2 {
		t.Errorf("parâmetros aplicados %+v, esperava os mais recentes %+v", c.params, p2)
	}
	if c.Version() != 1 {
		t.Errorf("versão %d, esperava 1 (pedidos coalescidos)", c.Version())
	}
	if c.pendingRegen {
		t.Error("pendência deveria ter sido consumida")
	}
}

// Pool menor que o conjunto desejado: o tick preenche o que dá e segue,
// sem erro fatal.
func TestManagerPoolExhaustion(t *testing.T) {
	cfg := lineConfig(3, []float32{1000, 2000})
	cfg.PoolPrewarm = 0
	cfg.PoolMax = 4
	m := mustInit(t, cfg)
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	if got := m.Count(); got != 4 {
		t.Fatalf("com pool de 4 deveria registrar 4 chunks, veio %d", got)
	}
}

// Sob pressão de pool as vagas vão para os chunks mais próximos do
// foco: os buracos ficam sempre na borda distante do conjunto visível.
func TestManagerPoolPressureNearestFirst(t *testing.T) {
	cfg := lineConfig(3, []float32{1000, 2000})
	cfg.PoolPrewarm = 0
	cfg.PoolMax = 4
	m := mustInit(t, cfg)
	defer m.Shutdown()

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	// Distâncias ao foco: x=0 -> 0, x=±1 -> 16, x=±2 -> 32, x=±3 -> 48.
	// Com 4 vagas e desempate por coordenada entram 0, -1, 1 e -2.
	for _, x := range []int32{-2, -1, 0, 1} {
		if _, ok := m.ChunkAt(util.NewChunkCoord(x, 0, 0)); !ok {
			t.Errorf("chunk próximo (%d,0,0) ficou de fora com vaga disponível", x)
		}
	}
	for _, x := range []int32{2, 3, -3} {
		if _, ok := m.ChunkAt(util.NewChunkCoord(x, 0, 0)); ok {
			t.Errorf("chunk distante (%d,0,0) tomou vaga de um próximo", x)
		}
	}
}

func TestManagerShutdown(t *testing.T) {
	m := mustInit(t, lineConfig(1, []float32{1000, 2000}))

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	m.Shutdown()

	if m.Count() != 0 {
		t.Errorf("chunks sobraram após Shutdown: %d", m.Count())
	}
	if err := m.Tick(1, util.Vector3{}); err != ErrNotInitialized {
		t.Errorf("Tick após Shutdown: esperava ErrNotInitialized, veio %v", err)
	}
}

// RequestRebuild é diferido: nada acontece no meio do tick corrente, e o
// tick seguinte regera tudo mesmo dentro do intervalo de reavaliação.
func TestManagerRequestRebuild(t *testing.T) {
	m := mustInit(t, lineConfig(2, []float32{1000, 2000}))
	defer m.Shutdown()

	focus := util.Vector3{X: 8, Y: 8, Z: 8}
	if err := m.Tick(0, focus); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	versions := make(map[util.ChunkCoord]uint64)
	m.ForEach(func(ch *Chunk) { versions[ch.Coord] = ch.Version() })

	m.RequestRebuild()
	if err := m.Tick(0.1, focus); err != nil {
		t.Fatalf("Tick pós-rebuild falhou: %v", err)
	}

	m.ForEach(func(ch *Chunk) {
		if ch.Version() != versions[ch.Coord]+1 {
			t.Errorf("chunk %v: versão %d, esperava %d após rebuild",
				ch.Coord, ch.Version(), versions[ch.Coord]+1)
		}
	})

	// Consumido: o tick seguinte dentro do intervalo não regera de novo.
	if err := m.Tick(0.1, focus); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}
	m.ForEach(func(ch *Chunk) {
		if ch.Version() != versions[ch.Coord]+1 {
			t.Errorf("chunk %v regerado com o rebuild já consumido", ch.Coord)
		}
	})
}

func TestManagerChunkByHandle(t *testing.T) {
	m := mustInit(t, lineConfig(1, []float32{1000, 2000}))
	defer m.Shutdown()

	if _, ok := m.ChunkByHandle(0); ok {
		t.Error("handle não deveria resolver antes do primeiro tick")
	}

	if err := m.Tick(0, util.Vector3{X: 8, Y: 8, Z: 8}); err != nil {
		t.Fatalf("Tick falhou: %v", err)
	}

	m.ForEach(func(ch *Chunk) {
		got, ok := m.ChunkByHandle(ch.Handle)
		if !ok || got != ch {
			t.Errorf("handle %d não resolveu para o próprio chunk", ch.Handle)
		}
	})

	if _, ok := m.ChunkByHandle(-1); ok {
		t.Error("handle negativo não deveria resolver")
	}
	if _, ok := m.ChunkByHandle(9999); ok {
		t.Error("handle fora do pool não deveria resolver")
	}
}
