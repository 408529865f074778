// Package terrain mantém o conjunto de chunks ao redor do foco: índice
// espacial esparso, pool de reuso, LOD adaptativo com histerese e a
// marcação das faces que precisam de células de transição.
package terrain

import (
	"fmt"

	"TerraVox/shared/density"
	"TerraVox/shared/isomesh"
	"TerraVox/shared/util"
)

// ChunkState é o estado do ciclo de vida de um chunk.
type ChunkState int32

const (
	StateUnconfigured ChunkState = iota
	StateConfiguring
	StateGenerating
	StateIdle
	StateReleasing
	StatePooled
	StateDestroyed
)

func (s ChunkState) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StateConfiguring:
		return "Configuring"
	case StateGenerating:
		return "Generating"
	case StateIdle:
		return "Idle"
	case StateReleasing:
		return "Releasing"
	case StatePooled:
		return "Pooled"
	case StateDestroyed:
		return "Destroyed"
	}
	return fmt.Sprintf("ChunkState(%d)", int32(s))
}

// chunkParams são os parâmetros de geração de um chunk em um nível de
// LOD. A extensão do chunk no mundo é invariante: mudar de nível troca
// contagem de células e tamanho de célula juntos, nunca o volume coberto.
type chunkParams struct {
	Cells    [3]int32
	CellSize float32
	Stride   int32
	Level    int32
	IsoLevel float32
}

// Chunk é uma região cúbica do mundo com malha própria. Os campos são
// mutados apenas pelo Manager (núcleo single-thread); consumidores leem
// a geometria publicada via Geometry/Version.
type Chunk struct {
	Handle int32
	Coord  util.ChunkCoord

	state  ChunkState
	extent float32
	params chunkParams

	// Faces contra vizinhos um nível mais grosso, cobertas por células
	// de transição na última geração.
	transitions util.FaceSet

	// Regeração coalescida: vários pedidos no mesmo tick viram um só,
	// valendo os parâmetros mais recentes.
	pendingRegen  bool
	pendingParams chunkParams

	geometry isomesh.GeometryData
	version  uint64
}

// State retorna o estado atual do ciclo de vida.
func (c *Chunk) State() ChunkState { return c.state }

// Level retorna o nível de LOD ativo (0 = mais fino).
func (c *Chunk) Level() int32 { return c.params.Level }

// Transitions retorna as faces cobertas por células de transição na
// malha publicada.
func (c *Chunk) Transitions() util.FaceSet { return c.transitions }

// Geometry retorna a malha publicada (espaço local do chunk). O slice é
// de posse do chunk; clonar antes de reter além do tick.
func (c *Chunk) Geometry() isomesh.GeometryData { return c.geometry }

// Version cresce a cada publicação de geometria; permite ao renderer
// detectar malhas a reenviar para a GPU.
func (c *Chunk) Version() uint64 { return c.version }

// Origin retorna a origem do chunk no mundo.
func (c *Chunk) Origin() util.Vector3 { return c.Coord.Origin(c.extent) }

// configure instala coordenada e parâmetros em um chunk recém saído do
// pool e agenda a primeira geração.
func (c *Chunk) configure(coord util.ChunkCoord, extent float32, params chunkParams) {
	c.state = StateConfiguring
	c.Coord = coord
	c.extent = extent
	c.params = params
	c.transitions = 0
	c.geometry = isomesh.GeometryData{}
	c.pendingRegen = true
	c.pendingParams = params
}

// requestRegen agenda uma regeração com os parâmetros dados. Pedidos
// repetidos antes da geração colapsam em um único, ficando os parâmetros
// mais recentes.
func (c *Chunk) requestRegen(params chunkParams) {
	c.pendingRegen = true
	c.pendingParams = params
}

// generate roda os meshers e publica a nova malha. needs marca as faces
// contra vizinhos mais grossos; a malha anterior continua válida até a
// publicação (nunca há buraco visível entre gerações).
func (c *Chunk) generate(field density.Field, needs util.FaceSet) error {
	c.state = StateGenerating
	c.params = c.pendingParams
	c.pendingRegen = false

	grid := isomesh.GridSpec{
		Origin:   c.Origin(),
		Cells:    c.params.Cells,
		CellSize: c.params.CellSize,
		IsoLevel: c.params.IsoLevel,
	}

	buf := isomesh.GetMeshBuffer()
	defer isomesh.PutMeshBuffer(buf)

	if err := isomesh.GenerateRegular(grid, field, buf); err != nil {
		c.state = StateIdle
		return err
	}
	if err := isomesh.GenerateTransitions(grid, needs, field, buf); err != nil {
		c.state = StateIdle
		return err
	}

	c.geometry = buf.Geometry.Clone()
	c.transitions = needs
	c.version++
	c.state = StateIdle
	return nil
}

// reset devolve o chunk ao estado de pool, soltando a geometria.
func (c *Chunk) reset() {
	c.state = StatePooled
	c.Coord = util.ChunkCoord{}
	c.extent = 0
	c.params = chunkParams{}
	c.transitions = 0
	c.pendingRegen = false
	c.geometry = isomesh.GeometryData{}
}
