package isomesh

import (
	"math"
	"testing"

	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

func testGrid(origin util.Vector3, cells int32, cellSize float32) GridSpec {
	return GridSpec{
		Origin:   origin,
		Cells:    [3]int32{cells, cells, cells},
		CellSize: cellSize,
	}
}

// triNormal calcula a normal geométrica (não normalizada) do triângulo t
// do buffer, seguindo a ordem dos índices.
func triNormal(g GeometryData, t int) (nx, ny, nz float64) {
	i0 := g.Indices[t*3] * 3
	i1 := g.Indices[t*3+1] * 3
	i2 := g.Indices[t*3+2] * 3

	ax := float64(g.Vertices[i1] - g.Vertices[i0])
	ay := float64(g.Vertices[i1+1] - g.Vertices[i0+1])
	az := float64(g.Vertices[i1+2] - g.Vertices[i0+2])
	bx := float64(g.Vertices[i2] - g.Vertices[i0])
	by := float64(g.Vertices[i2+1] - g.Vertices[i0+1])
	bz := float64(g.Vertices[i2+2] - g.Vertices[i0+2])

	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

func triCentroid(g GeometryData, t int) (cx, cy, cz float64) {
	for k := 0; k < 3; k++ {
		i := g.Indices[t*3+k] * 3
		cx += float64(g.Vertices[i]) / 3
		cy += float64(g.Vertices[i+1]) / 3
		cz += float64(g.Vertices[i+2]) / 3
	}
	return
}

func TestGenerateRegularNilField(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	err := GenerateRegular(testGrid(util.Vector3{}, 8, 1), nil, buf)
	if err != density.ErrNilField {
		t.Fatalf("esperava ErrNilField, veio %v", err)
	}
	if buf.Geometry.TriangleCount() != 0 {
		t.Errorf("buffer deveria ficar intacto, tem %d triângulos", buf.Geometry.TriangleCount())
	}
}

func TestGenerateRegularUniformField(t *testing.T) {
	cases := []struct {
		name  string
		value float32
	}{
		{"tudo sólido", -1.0},
		{"tudo vazio", 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := GetMeshBuffer()
			defer PutMeshBuffer(buf)

			field := density.FieldFunc(func(x, y, z float32) float32 { return tc.value })
			if err := GenerateRegular(testGrid(util.Vector3{}, 8, 1), field, buf); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if n := buf.Geometry.TriangleCount(); n != 0 {
				t.Errorf("campo uniforme gerou %d triângulos", n)
			}
		})
	}
}

// O semi-espaço y < 0 em um chunk logo abaixo da superfície deve gerar
// um plano perfeito: dois triângulos por coluna de célula, todos os
// vértices exatamente no topo do chunk e todas as normais (0,-1,0)
// (gradiente +y negado).
func TestGenerateRegularHalfSpace(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	grid := testGrid(util.Vector3{X: 0, Y: -8, Z: 0}, 8, 1)
	if err := GenerateRegular(grid, density.HalfSpace{Height: 0}, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	geo := buf.Geometry
	if got, want := geo.TriangleCount(), 128; got != want {
		t.Fatalf("triângulos: veio %d, esperava %d (2 por coluna de célula)", got, want)
	}

	for i := 0; i < geo.VertexCount(); i++ {
		y := geo.Vertices[i*3+1]
		if math.Abs(float64(y)-8.0) > 1e-4 {
			t.Fatalf("vértice %d fora do plano da superfície: y local = %v", i, y)
		}
		nx, ny, nz := geo.Normals[i*3], geo.Normals[i*3+1], geo.Normals[i*3+2]
		if math.Abs(float64(nx)) > 1e-5 || math.Abs(float64(ny)+1) > 1e-5 || math.Abs(float64(nz)) > 1e-5 {
			t.Fatalf("vértice %d com normal (%v,%v,%v), esperava (0,-1,0)", i, nx, ny, nz)
		}
	}

	// Winding geométrico aponta para o vazio (acima do plano).
	for tri := 0; tri < geo.TriangleCount(); tri++ {
		_, ny, _ := triNormal(geo, tri)
		if ny <= 0 {
			t.Fatalf("triângulo %d com winding invertido (normal y = %v)", tri, ny)
		}
	}
}

func TestGenerateRegularSphereBounds(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	const radius = 5.0
	grid := testGrid(util.Vector3{}, 16, 1)
	field := density.Sphere{CenterX: 8, CenterY: 8, CenterZ: 8, Radius: radius}
	if err := GenerateRegular(grid, field, buf); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	geo := buf.Geometry
	if geo.TriangleCount() == 0 {
		t.Fatal("esfera não gerou triângulos")
	}

	// Vértices ficam presos às arestas das células cruzadas, então a
	// distância ao centro não pode fugir do raio por mais de uma diagonal
	// de célula.
	tol := math.Sqrt(3) * float64(grid.CellSize)
	for i := 0; i < geo.VertexCount(); i++ {
		dx := float64(geo.Vertices[i*3]) - 8
		dy := float64(geo.Vertices[i*3+1]) - 8
		dz := float64(geo.Vertices[i*3+2]) - 8
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if math.Abs(d-radius) > tol {
			t.Fatalf("vértice %d a distância %v do centro, raio %v ± %v", i, d, radius, tol)
		}
	}
}

// Toda a malha da esfera deve apontar para fora: a normal geométrica de
// cada triângulo não degenerado tem produto escalar positivo com a
// direção radial do centróide.
func TestGenerateRegularSphereWinding(t *testing.T) {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	grid := testGrid(util.Vector3{}, 16, 1)
	field := density.Sphere{CenterX: 8, CenterY: 8, CenterZ: 8, Radius: 5}
	if err := GenerateRegular(grid, field, buf); err != nil {
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

/// A geração é uma função pura da grade e do campo: duas execuções devem
// produzir buffers idênticos bit a bit.
func TestGenerateRegularDeterministic(t *testing.T) {
	grid := testGrid(util.Vector3{X: -16, Y: -8, Z: 32}, 16, 1)
	field := density.NewNoiseTerrain(42)

	a := GetMeshBuffer()
	defer PutMeshBuffer(a)
	b := GetMeshBuffer()
	defer PutMeshBuffer(b)

	if err := GenerateRegular(grid, field, a); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := GenerateRegular(grid, field, b); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(a.Geometry.Vertices) != len(b.Geometry.Vertices) {
		t.Fatalf("contagem de vértices divergiu: %d vs %d", len(a.Geometry.Vertices), len(b.Geometry.Vertices))
	}
	for i := range a.Geometry.Vertices {
		if a.Geometry.Vertices[i] != b.Geometry.Vertices[i] {
			t.Fatalf("vértice divergiu no float %d: %v vs %v", i, a.Geometry.Vertices[i], b.Geometry.Vertices[i])
		}
	}
	for i := range a.Geometry.Normals {
		if a.Geometry.Normals[i] != b.Geometry.Normals[i] {
			t.Fatalf("normal divergiu no float %d", i)
		}
	}
	for i := range a.Geometry.Indices {
		if a.Geometry.Indices[i] != b.Geometry.Indices[i] {
			t.Fatalf("índice divergiu em %d", i)
		}
	}
}

func TestGridSpecSanitize(t *testing.T) {
	g := GridSpec{Cells: [3]int32{0, -3, 5}, CellSize: 0}
	g.Sanitize()
	if g.Cells != [3]int32{1, 1, 5} {
		t.Errorf("células: veio %v", g.Cells)
	}
	if g.CellSize != 1 {
		t.Errorf("cellSize: veio %v", g.CellSize)
	}
}
