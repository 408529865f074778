package isomesh

import (
	"testing"

	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

func TestGenerateTransitionsNilField(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	needs := util.FaceSet(0).With(util.FaceXPos)
	if err := GenerateTransitions(testGrid(util.Vector3{}, 8, 1), needs, nil, buf); err != density.ErrNilField {
		t.Fatalf("esperava ErrNilField, veio %v", err)
	}
}

func TestGenerateTransitionsEmptyNeeds(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	field := density.Sphere{CenterX: 4, CenterY: 4, CenterZ: 4, Radius: 3}
	if err := GenerateTransitions(testGrid(util.Vector3{}, 8, 1), 0, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if n := buf.Geometry.TriangleCount(); n != 0 {
		t.Errorf("sem faces marcadas deveria ser no-op, gerou %d triângulos", n)
	}
}

func TestGenerateTransitionsUniformField(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	var all util.FaceSet
	for f := util.Face(0); f < util.FaceCount; f++ {
		all = all.With(f)
	}

	field := density.FieldFunc(func(x, y, z float32) float32 { return -1 })
	if err := GenerateTransitions(testGrid(util.Vector3{}, 8, 1), all, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if n := buf.Geometry.TriangleCount(); n != 0 {
		t.Errorf("campo uniforme gerou %d triângulos de transição", n)
	}
}

// A geometria de transição fica colada à face marcada: entre o plano da
// face e uma célula grossa para fora, nunca no interior do chunk nem nas
// outras faces.
func TestGenerateTransitionsConfinedToFace(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	grid := testGrid(util.Vector3{X: 0, Y: -8, Z: 0}, 8, 1)
	field := density.HalfSpace{Height: -0.5}
	needs := util.FaceSet(0).With(util.FaceXPos)
	if err := GenerateTransitions(grid, needs, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	geo := buf.Geometry
	if geo.TriangleCount() == 0 {
		t.Fatal("superfície cruza a face +X e nada foi gerado")
	}

	faceX := float64(grid.Cells[0]) * float64(grid.CellSize)
	outer := faceX + 2*float64(grid.CellSize)
	for i := 0; i < geo.VertexCount(); i++ {
		x := float64(geo.Vertices[i*3])
		if x < faceX-1e-4 || x > outer+1e-4 {
			t.Fatalf("vértice %d fora da faixa da face: x local = %v (faixa [%v, %v])", i, x, faceX, outer)
		}
	}
}

// Mesmo através da costura 2:1 o winding continua apontando para o vazio.
func TestGenerateTransitionsWinding(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	grid := testGrid(util.Vector3{X: 0, Y: -8, Z: 0}, 8, 1)
	field := density.HalfSpace{Height: -0.5}

	var all util.FaceSet
	for f := util.Face(0); f < util.FaceCount; f++ {
		all = all.With(f)
	}
	if err := GenerateTransitions(grid, all, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	geo := buf.Geometry
	checked := 0
	for tri := 0; tri < geo.TriangleCount(); tri++ {
		nx, ny, nz := triNormal(geo, tri)
		area2 := nx*nx + ny*ny + nz*nz
		if area2 < 1e-8 {
			continue
		}
		// Superfície plana horizontal: fora do sólido é +y.
		if ny <= 0 {
			t.Fatalf("triângulo %d com winding invertido (normal = %v,%v,%v)", tri, nx, ny, nz)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("nenhum triângulo não degenerado para verificar")
	}
}

// Campo curvo pelas seis faces: a superfície da esfera cruza cada face
// em ângulos variados, exercitando muitas máscaras da tabela. Todo
// triângulo de costura deve apontar para longe do centro.
func TestGenerateTransitionsSphereWinding(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	grid := testGrid(util.Vector3{}, 16, 1)
	field := density.Sphere{CenterX: 8, CenterY: 8, CenterZ: 8, Radius: 9}

	var all util.FaceSet
	for f := util.Face(0); f < util.FaceCount; f++ {
		all = all.With(f)
	}
	if err := GenerateTransitions(grid, all, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	geo := buf.Geometry
	checked := 0
	for tri := 0; tri < geo.TriangleCount(); tri++ {
		nx, ny, nz := triNormal(geo, tri)
		area2 := nx*nx + ny*ny + nz*nz
		if area2 < 1e-8 {
			continue // degenerado, sem orientação definida
		}
		cx, cy, cz := triCentroid(geo, tri)
		dot := nx*(cx-8) + ny*(cy-8) + nz*(cz-8)
		if dot <= 0 {
			t.Fatalf("triângulo %d aponta para dentro (dot = %v)", tri, dot)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("nenhum triângulo não degenerado para verificar")
	}
}

func TestGenerateTransitionsDeterministic(t *testing.T) {
	grid := testGrid(util.Vector3{X: 16, Y: -8, Z: -16}, 16, 1)
	field := density.NewNoiseTerrain(7)
	needs := util.FaceSet(0).With(util.FaceXNeg).With(util.FaceYPos).With(util.FaceZPos)

	a := GetMeshBuffer()
	defer PutMeshBuffer(a)
	b := GetMeshBuffer()
	defer PutMeshBuffer(b)

	if err := GenerateTransitions(grid, needs, field, a); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := GenerateTransitions(grid, needs, field, b); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(a.Geometry.Vertices) != len(b.Geometry.Vertices) {
		t.Fatalf("contagem de vértices divergiu: %d vs %d", len(a.Geometry.Vertices), len(b.Geometry.Vertices))
	}
	for i := range a.Geometry.Vertices {
		if a.Geometry.Vertices[i] != b.Geometry.Vertices[i] {
			t.Fatalf("vértice divergiu no float %d", i)
		}
	}
	for i := range a.Geometry.Indices {
		if a.Geometry.Indices[i] != b.Geometry.Indices[i] {
			t.Fatalf("índice divergiu em %d", i)
		}
	}
}

// tieBit reduz um ponto do estêncil ao bit da máscara que decide o seu
// sinal: os grossos herdam o canto fino coincidente.
func tieBit(p uint8) int {
	if p < 9 {
		return int(p)
	}
	return transitionCoarseTie[p-9]
}

// Consistência interna das tabelas de transição: máscaras uniformes
// vazias, classes dentro da faixa, triângulos referenciando vértices
// existentes e extremos de interpolação válidos no estêncil de 13 pontos.
func TestTransitionTableConsistency(t *testing.T) {
	if len(transitionVertexData[0]) != 0 || len(transitionVertexData[0x1FF]) != 0 {
		t.Fatal("máscaras uniformes deveriam ser vazias")
	}

	for mask := 0; mask < 512; mask++ {
		class := int(transitionCellClass[mask] & 0x7FFF)
		if class >= len(transitionClassTriangles) {
			t.Fatalf("máscara %d referencia classe %d inexistente", mask, class)
		}
		tris := transitionClassTriangles[class]
		if len(tris)%3 != 0 {
			t.Fatalf("classe %d com lista de índices não múltipla de 3", class)
		}
		defs := transitionVertexData[mask]
		for _, idx := range tris {
			if int(idx) >= len(defs) {
				t.Fatalf("máscara %d: triângulo referencia vértice %d de %d", mask, idx, len(defs))
			}
		}
		for _, vd := range defs {
			a := vd >> 4
			b := vd & 0x0F
			if a > 12 || b > 12 || a == b {
				t.Fatalf("máscara %d: par de extremos inválido %d-%d", mask, a, b)
			}
			// Só arestas cruzadas: com os pontos grossos reduzidos ao
			// canto fino coincidente, exatamente um extremo negativo.
			an := mask&(1<<tieBit(a)) != 0
			bn := mask&(1<<tieBit(b)) != 0
			if an == bn {
				t.Fatalf("máscara %d: aresta %d-%d não cruza a superfície", mask, a, b)
			}
		}
		// Complemento cai na mesma classe canônica.
		if got := transitionCellClass[511^mask] & 0x7FFF; int(got) != class {
			t.Fatalf("máscara %d e complemento divergem de classe: %d vs %d", mask, class, got)
		}
	}
}
