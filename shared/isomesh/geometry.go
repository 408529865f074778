// Package isomesh extrai isosuperfícies trianguladas de um campo de
// densidade com sinal: Marching Cubes regular no interior de um chunk e
// células de transição 2:1 nas faces contra vizinhos mais grossos.
package isomesh

import (
	"sync"
)

// GeometryData contém os buffers de geometria de uma malha: posições e
// normais planas (3 floats por vértice, no espaço local do chunk) e a
// lista plana de índices de triângulos (múltiplo de 3, winding CCW visto
// de fora do sólido).
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount retorna o número de vértices no buffer.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos no buffer.
func (g GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint32, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// Global Pool para reciclar MeshBuffers e evitar alocação excessiva (GC Pressure)
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: GeometryData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Indices:  make([]uint32, 0, 2048),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio para meshing.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera os buffers e devolve a memória para o Pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Indices = b.Geometry.Indices[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// addVertex adiciona um vértice com normal e retorna seu índice.
func (b *MeshBuffer) addVertex(v [3]float32, n [3]float32) uint32 {
	idx := uint32(len(b.Geometry.Vertices) / 3)
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	return idx
}

// AddTriangle adiciona um triângulo com normais por vértice. Não há
// solda de vértices: cada uso de aresta emite um vértice novo, mesmo
// que coincida com o de uma célula vizinha.
func (b *MeshBuffer) AddTriangle(v1, v2, v3 [3]float32, n1, n2, n3 [3]float32) {
	i1 := b.addVertex(v1, n1)
	i2 := b.addVertex(v2, n2)
	i3 := b.addVertex(v3, n3)
	b.Geometry.Indices = append(b.Geometry.Indices, i1, i2, i3)
}
