package terrain

import (
	"errors"
	"log"
	"sort"

	"github.com/chewxy/math32"

	"TerraVox/shared/config"
	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

// ErrNotInitialized indica uso do Manager antes de Init (ou após Shutdown).
var ErrNotInitialized = errors.New("terrain: manager não inicializado")

// hysteresisFraction é a banda morta ao redor de cada limiar de LOD:
// dentro de ±10% do limiar o nível atual é mantido, evitando oscilação
// de malha quando o foco paira sobre a fronteira.
const hysteresisFraction = 0.10

// levelSpec é um nível de LOD resolvido da configuração.
type levelSpec struct {
	Threshold float32
	Stride    int32
	Cells     [3]int32
}

// Manager é o núcleo single-thread do terreno: mantém o índice esparso
// de chunks ao redor do foco, decide níveis de LOD com histerese e marca
// faces de transição contra vizinhos mais grossos. Toda mutação acontece
// dentro de Tick; não há goroutines internas nem locks.
type Manager struct {
	cfg    *config.Config
	field  density.Field
	pool   *Pool
	chunks map[util.ChunkCoord]*Chunk

	extent float32
	levels []levelSpec

	acc         float32
	ran         bool
	rebuild     bool
	initialized bool
}

// Init prepara o manager com a configuração e o campo de densidade.
func (m *Manager) Init(cfg *config.Config, field density.Field) error {
	if field == nil {
		return density.ErrNilField
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()

	m.cfg = cfg
	m.field = field
	m.extent = float32(cfg.CellsX) * cfg.CellSize
	m.levels = resolveLevels(cfg)
	m.pool = NewPool(cfg.PoolPrewarm, cfg.PoolMax)
	m.chunks = make(map[util.ChunkCoord]*Chunk)
	m.acc = 0
	m.ran = false
	m.rebuild = false
	m.initialized = true

	log.Printf("[LOD] inicializado: extensão %.1f, %d níveis, pool %d/%d",
		m.extent, len(m.levels), cfg.PoolPrewarm, cfg.PoolMax)
	return nil
}

// resolveLevels monta a escada de LOD a partir das listas paralelas da
// configuração. Com LOD adaptativo desligado (ou listas vazias) há um
// único nível com a grade base.
func resolveLevels(cfg *config.Config) []levelSpec {
	if !cfg.AdaptiveLOD || len(cfg.LODThresholds) == 0 {
		return []levelSpec{{
			Threshold: math32.MaxFloat32,
			Stride:    cfg.Stride,
			Cells:     [3]int32{cfg.CellsX, cfg.CellsY, cfg.CellsZ},
		}}
	}

	levels := make([]levelSpec, len(cfg.LODThresholds))
	for i := range levels {
		levels[i] = levelSpec{
			Threshold: cfg.LODThresholds[i],
			Stride:    cfg.LODStrides[i],
			Cells:     cfg.LODCellProfiles[i],
		}
	}
	return levels
}

// Extent retorna a extensão de um chunk no mundo (invariante sob LOD).
func (m *Manager) Extent() float32 { return m.extent }

// LevelCount retorna quantos níveis de LOD existem.
func (m *Manager) LevelCount() int { return len(m.levels) }

// ChunkAt retorna o chunk registrado na coordenada, se houver.
func (m *Manager) ChunkAt(coord util.ChunkCoord) (*Chunk, bool) {
	c, ok := m.chunks[coord]
	return c, ok
}

// ChunkByHandle retorna o chunk pelo handle estável do pool, se ele
// estiver em uso no momento.
func (m *Manager) ChunkByHandle(handle int32) (*Chunk, bool) {
	if !m.initialized {
		return nil, false
	}
	c := m.pool.byHandle(handle)
	if c == nil || c.state == StatePooled || c.state == StateDestroyed || c.state == StateUnconfigured {
		return nil, false
	}
	return c, true
}

// RequestRebuild agenda a regeração de todos os chunks registrados. O
// pedido é diferido: roda no próximo Tick, nunca no meio do corrente, e
// ignora o intervalo de reavaliação.
func (m *Manager) RequestRebuild() {
	m.rebuild = true
}

// Count retorna o número de chunks registrados.
func (m *Manager) Count() int { return len(m.chunks) }

// ForEach visita todos os chunks registrados.
func (m *Manager) ForEach(fn func(*Chunk)) {
	for _, c := range m.chunks {
		fn(c)
	}
}

// paramsFor monta os parâmetros de geração para um nível. O tamanho da
// célula sai da extensão fixa dividida pela contagem do nível: trocar de
// nível nunca muda o volume coberto pelo chunk.
func (m *Manager) paramsFor(level int) chunkParams {
	spec := m.levels[level]
	return chunkParams{
		Cells:    spec.Cells,
		CellSize: m.extent / float32(spec.Cells[0]),
		Stride:   spec.Stride,
		Level:    int32(level),
		IsoLevel: m.cfg.IsoLevel,
	}
}

// levelForDistance retorna o menor nível cujo limiar cobre a distância;
// além do último limiar vale o nível mais grosso.
func (m *Manager) levelForDistance(dist float32) int {
	for i, spec := range m.levels {
		if dist <= spec.Threshold {
			return i
		}
	}
	return len(m.levels) - 1
}

// levelWithHysteresis aplica a banda morta: se a distância está a menos
// de 10% do limiar que separa o nível atual do desejado, o atual é
// mantido.
func (m *Manager) levelWithHysteresis(dist float32, current int) int {
	raw := m.levelForDistance(dist)
	if current < 0 || current >= len(m.levels) || raw == current {
		return raw
	}

	boundary := current
	if raw < boundary {
		boundary = raw
	}
	t := m.levels[boundary].Threshold
	if math32.Abs(dist-t) <= hysteresisFraction*t {
		return current
	}
	return raw
}

// targetLevel retorna o nível que o chunk terá após o tick corrente:
// o pendente se há regeração agendada, senão o ativo.
func (c *Chunk) targetLevel() int32 {
	if c.pendingRegen {
		return c.pendingParams.Level
	}
	return c.params.Level
}

// transitionNeeds marca as faces cujo vizinho registrado ficará
// estritamente mais grosso. Vizinho ausente nunca pede transição: a
// borda do conjunto visível fica com a malha regular pura.
func (m *Manager) transitionNeeds(c *Chunk) util.FaceSet {
	var needs util.FaceSet
	mine := c.targetLevel()
	for f := util.Face(0); f < util.FaceCount; f++ {
		if n, ok := m.chunks[c.Coord.Neighbor(f)]; ok && n.targetLevel() > mine {
			needs = needs.With(f)
		}
	}
	return needs
}

// Tick avança o terreno. A reavaliação completa (conjunto visível,
// níveis, transições, regerações) roda a cada LODInterval segundos; o
// primeiro tick roda imediatamente. dt em segundos.
//
// A atualização é em duas fases: primeiro todos os chunks desejados são
// registrados e têm seus níveis decididos, só então as faces de
// transição são calculadas e as malhas regeradas. Assim cada chunk vê os
// níveis pós-atualização dos vizinhos, nunca uma mistura do tick
// anterior.
func (m *Manager) Tick(dt float32, focus util.Vector3) error {
	if !m.initialized {
		return ErrNotInitialized
	}

	rebuild := m.rebuild
	m.rebuild = false

	m.acc += dt
	if !rebuild && m.ran && m.acc < m.cfg.LODInterval {
		return nil
	}
	m.acc = 0
	m.ran = true

	center := util.WorldToChunkCoord(focus, m.extent)
	rx, ry, rz := m.cfg.ViewRadiusX, m.cfg.ViewRadiusY, m.cfg.ViewRadiusZ

	type candidate struct {
		coord util.ChunkCoord
		dist  float32
	}
	candidates := make([]candidate, 0, (2*rx+1)*(2*ry+1)*(2*rz+1))
	desired := make(map[util.ChunkCoord]bool, cap(candidates))

	for dz := -rz; dz <= rz; dz++ {
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				coord := center.Add(util.ChunkCoord{X: dx, Y: dy, Z: dz})
				desired[coord] = true
				candidates = append(candidates, candidate{
					coord: coord,
					dist:  math32.Sqrt(util.DistSq(focus, coord.Center(m.extent))),
				})
			}
		}
	}

	// Os mais próximos do foco primeiro: se o pool acabar, os buracos
	// ficam na borda distante do conjunto visível, nunca junto da câmera.
	// Desempate por coordenada para manter o tick determinístico.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.coord.X != b.coord.X {
			return a.coord.X < b.coord.X
		}
		if a.coord.Y != b.coord.Y {
			return a.coord.Y < b.coord.Y
		}
		return a.coord.Z < b.coord.Z
	})

	// Chunks fora do conjunto desejado voltam ao pool antes das novas
	// aquisições, liberando vagas para os candidatos próximos.
	for coord, ch := range m.chunks {
		if !desired[coord] {
			m.pool.Release(ch)
			delete(m.chunks, coord)
		}
	}

	order := make([]util.ChunkCoord, 0, len(candidates))

	// Fase 1: registrar e decidir níveis.
	exhausted := false
	for _, cand := range candidates {
		coord := cand.coord
		ch, ok := m.chunks[coord]
		if !ok {
			acquired, err := m.pool.Acquire()
			if err != nil {
				if !exhausted {
					log.Printf("[LOD] pool esgotado (%d em uso), chunks distantes ficam de fora", m.pool.InUse())
					exhausted = true
				}
				continue
			}
			level := m.levelForDistance(cand.dist)
			acquired.configure(coord, m.extent, m.paramsFor(level))
			m.chunks[coord] = acquired
			order = append(order, coord)
			continue
		}

		order = append(order, coord)
		level := m.levelWithHysteresis(cand.dist, int(ch.Level()))
		if int32(level) != ch.Level() {
			ch.requestRegen(m.paramsFor(level))
		}
	}

	// Fase 2: transições e regeração, já com todos os níveis decididos.
	for _, coord := range order {
		ch := m.chunks[coord]
		if rebuild && !ch.pendingRegen {
			ch.requestRegen(ch.params)
		}
		needs := m.transitionNeeds(ch)
		if !ch.pendingRegen && needs == ch.transitions {
			continue
		}
		if !ch.pendingRegen {
			// Só as costuras mudaram: regera com os parâmetros ativos.
			ch.requestRegen(ch.params)
		}
		if err := ch.generate(m.field, needs); err != nil {
			log.Printf("[LOD] falha ao gerar chunk %v: %v", coord, err)
		}
	}

	return nil
}

// Shutdown devolve todos os chunks e descarta o pool. O manager pode ser
// reutilizado com um novo Init.
func (m *Manager) Shutdown() {
	if !m.initialized {
		return
	}
	for coord, ch := range m.chunks {
		m.pool.Release(ch)
		delete(m.chunks, coord)
	}
	m.pool.destroy()
	m.initialized = false
	log.Printf("[LOD] encerrado")
}
