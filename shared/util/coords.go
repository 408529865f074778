package util

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// ChunkCoord representa a coordenada inteira de um chunk no espaço de chunks.
// Cada chunk cobre uma região cúbica de extensão fixa no mundo.
type ChunkCoord struct {
	X, Y, Z int32
}

// NewChunkCoord cria uma nova coordenada de chunk.
func NewChunkCoord(x, y, z int32) ChunkCoord {
	return ChunkCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c ChunkCoord) Add(other ChunkCoord) ChunkCoord {
	return ChunkCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Sub subtrai duas coordenadas.
func (c ChunkCoord) Sub(other ChunkCoord) ChunkCoord {
	return ChunkCoord{
		X: c.X - other.X,
		Y: c.Y - other.Y,
		Z: c.Z - other.Z,
	}
}

// Equals verifica igualdade entre coordenadas.
func (c ChunkCoord) Equals(other ChunkCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Origin retorna a origem do chunk no espaço do mundo, dada a extensão
// fixa de um chunk. A extensão é invariante sob mudanças de LOD.
func (c ChunkCoord) Origin(extent float32) rl.Vector3 {
	return rl.Vector3{
		X: float32(c.X) * extent,
		Y: float32(c.Y) * extent,
		Z: float32(c.Z) * extent,
	}
}

// Center retorna o centro do chunk no espaço do mundo.
func (c ChunkCoord) Center(extent float32) rl.Vector3 {
	o := c.Origin(extent)
	half := extent * 0.5
	return rl.Vector3{X: o.X + half, Y: o.Y + half, Z: o.Z + half}
}

// WorldToChunkCoord retorna a coordenada do chunk que contém a posição dada.
func WorldToChunkCoord(pos rl.Vector3, extent float32) ChunkCoord {
	return ChunkCoord{
		X: int32(math.Floor(float64(pos.X / extent))),
		Y: int32(math.Floor(float64(pos.Y / extent))),
		Z: int32(math.Floor(float64(pos.Z / extent))),
	}
}

// Face identifica uma das seis faces de um chunk.
type Face int

const (
	FaceXNeg Face = iota
	FaceXPos
	FaceYNeg
	FaceYPos
	FaceZNeg
	FaceZPos
	FaceCount
)

// String retorna o nome curto da face (-X, +X, ...).
func (f Face) String() string {
	switch f {
	case FaceXNeg:
		return "-X"
	case FaceXPos:
		return "+X"
	case FaceYNeg:
		return "-Y"
	case FaceYPos:
		return "+Y"
	case FaceZNeg:
		return "-Z"
	case FaceZPos:
		return "+Z"
	}
	return "?"
}

// FaceOffsets mapeia cada face para o deslocamento do chunk vizinho.
var FaceOffsets = [FaceCount]ChunkCoord{
	FaceXNeg: {X: -1},
	FaceXPos: {X: 1},
	FaceYNeg: {Y: -1},
	FaceYPos: {Y: 1},
	FaceZNeg: {Z: -1},
	FaceZPos: {Z: 1},
}

// Neighbor retorna a coordenada do vizinho através da face dada.
func (c ChunkCoord) Neighbor(f Face) ChunkCoord {
	return c.Add(FaceOffsets[f])
}

// Opposite retorna a face oposta.
func (f Face) Opposite() Face {
	switch f {
	case FaceXNeg:
		return FaceXPos
	case FaceXPos:
		return FaceXNeg
	case FaceYNeg:
		return FaceYPos
	case FaceYPos:
		return FaceYNeg
	case FaceZNeg:
		return FaceZPos
	}
	return FaceZNeg
}

// FaceSet é um conjunto de faces codificado em bits (uma por face).
// Usado para marcar quais faces de um chunk precisam de células de
// transição contra um vizinho mais grosso.
type FaceSet uint8

// With retorna o conjunto com a face adicionada.
func (s FaceSet) With(f Face) FaceSet {
	return s | (1 << uint(f))
}

// Has verifica se a face está no conjunto.
func (s FaceSet) Has(f Face) bool {
	return s&(1<<uint(f)) != 0
}

// Empty verifica se o conjunto está vazio.
func (s FaceSet) Empty() bool {
	return s == 0
}

// String lista as faces ativas do conjunto.
func (s FaceSet) String() string {
	if s.Empty() {
		return "[]"
	}
	out := "["
	for f := Face(0); f < FaceCount; f++ {
		if s.Has(f) {
			if len(out) > 1 {
				out += " "
			}
			out += f.String()
		}
	}
	return out + "]"
}
