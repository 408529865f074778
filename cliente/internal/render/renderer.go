package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"TerraVox/shared/isomesh"
	"TerraVox/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChunkModel é a malha de um chunk residente na GPU.
type ChunkModel struct {
	Coord   util.ChunkCoord
	Level   int32
	Version uint64
	Origin  rl.Vector3
	Model   rl.Model
	Active  bool
}

// levelTints diferencia visualmente os níveis de LOD (debug e leitura do
// terreno distante). Níveis além da lista usam a última cor.
var levelTints = []rl.Color{
	{R: 110, G: 190, B: 110, A: 255},
	{R: 150, G: 160, B: 110, A: 255},
	{R: 170, G: 130, B: 100, A: 255},
}

// Renderer mantém os modelos de chunk na GPU e os desenha. Upload e
// descarte acontecem na thread principal (exigência do OpenGL); o mutex
// só protege contra leituras do HUD.
type Renderer struct {
	mu     sync.RWMutex
	Models map[util.ChunkCoord]*ChunkModel

	Wireframe bool
}

// NewRenderer cria um renderizador vazio.
func NewRenderer() *Renderer {
	return &Renderer{
		Models: make(map[util.ChunkCoord]*ChunkModel),
	}
}

// ModelVersion retorna a versão residente para a coordenada (0 = nada).
func (r *Renderer) ModelVersion(coord util.ChunkCoord) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cm, ok := r.Models[coord]; ok {
		return cm.Version
	}
	return 0
}

// Coords lista as coordenadas residentes na GPU.
func (r *Renderer) Coords() []util.ChunkCoord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]util.ChunkCoord, 0, len(r.Models))
	for coord := range r.Models {
		out = append(out, coord)
	}
	return out
}

// Count retorna quantos chunks estão residentes na GPU.
func (r *Renderer) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Models)
}

// Upload substitui (ou cria) o modelo GPU de um chunk. Geometria vazia
// remove o modelo: chunk de ar puro não ocupa GPU.
func (r *Renderer) Upload(coord util.ChunkCoord, level int32, version uint64, origin rl.Vector3, geo isomesh.GeometryData) {
	if !rl.IsWindowReady() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.Models[coord]; ok {
		if old.Active {
			rl.UnloadModel(old.Model)
		}
		delete(r.Models, coord)
	}

	if len(geo.Vertices) == 0 {
		return
	}

	mesh := geometryToMesh(geo)
	rl.UploadMesh(&mesh, false)
	freeMeshRAM(&mesh)

	r.Models[coord] = &ChunkModel{
		Coord:   coord,
		Level:   level,
		Version: version,
		Origin:  origin,
		Model:   rl.LoadModelFromMesh(mesh),
		Active:  true,
	}
}

// Remove descarta o modelo de um chunk que saiu do conjunto visível.
func (r *Renderer) Remove(coord util.ChunkCoord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cm, ok := r.Models[coord]; ok {
		if cm.Active {
			rl.UnloadModel(cm.Model)
		}
		delete(r.Models, coord)
	}
}

// geometryToMesh converte os buffers em uma rl.Mesh com memória C. Os
// índices da malha são sequenciais por construção (sem solda), então o
// upload dispensa o index buffer.
func geometryToMesh(geo isomesh.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(geo.VertexCount())
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(geo.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&geo.Vertices[0]), len(geo.Vertices)*4))
	}
	if len(geo.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&geo.Normals[0]), len(geo.Normals)*4))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a cópia em RAM após o upload para a GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
}

// Draw renderiza os chunks dentro do raio de visão da câmera.
func (r *Renderer) Draw(cam rl.Camera3D, extent float32) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Raio generoso: o LOD já limita a geometria, aqui só evitamos draw
	// calls de chunks muito atrás da câmera.
	viewRadius := float32(600.0)
	viewRadiusSq := viewRadius * viewRadius

	half := extent * 0.5
	for _, cm := range r.Models {
		if !cm.Active {
			continue
		}
		center := rl.Vector3{X: cm.Origin.X + half, Y: cm.Origin.Y + half, Z: cm.Origin.Z + half}
		if util.DistSq(cam.Position, center) > viewRadiusSq {
			continue
		}

		tint := levelTints[len(levelTints)-1]
		if int(cm.Level) < len(levelTints) {
			tint = levelTints[cm.Level]
		}

		if r.Wireframe {
			rl.DrawModelWires(cm.Model, cm.Origin, 1.0, tint)
		} else {
			rl.DrawModel(cm.Model, cm.Origin, 1.0, tint)
		}
	}
}

// Unload descarta todos os modelos da GPU.
func (r *Renderer) Unload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cm := range r.Models {
		if cm.Active {
			rl.UnloadModel(cm.Model)
		}
	}
	r.Models = make(map[util.ChunkCoord]*ChunkModel)
}
