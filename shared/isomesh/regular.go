package isomesh

import (
	"github.com/chewxy/math32"

	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

// interpEpsilon protege a divisão da interpolação de aresta contra
// denominadores nulos quando as densidades dos extremos quase coincidem.
const interpEpsilon = 1e-6

// GridSpec descreve a grade de amostragem de um chunk: origem no mundo,
// contagem de células por eixo e tamanho da aresta da célula. IsoLevel
// desloca o nível extraído (0 = superfície f(p) = 0).
type GridSpec struct {
	Origin   util.Vector3
	Cells    [3]int32
	CellSize float32
	IsoLevel float32
}

// Sanitize corrige silenciosamente parâmetros degenerados: contagens de
// células abaixo de 1 sobem para 1 e CellSize não positivo vira 1.
func (g *GridSpec) Sanitize() {
	for i := range g.Cells {
		if g.Cells[i] < 1 {
			g.Cells[i] = 1
		}
	}
	if g.CellSize <= 0 {
		g.CellSize = 1
	}
}

// edgeLerp interpola o cruzamento do zero entre dois extremos de aresta.
// t é limitado a [0,1], então o vértice nunca sai da aresta mesmo com
// densidades patológicas.
func edgeLerp(pa, pb [3]float32, da, db float32) [3]float32 {
	t := da / (da - db + interpEpsilon)
	t = util.Clamp(t, 0, 1)
	return [3]float32{
		pa[0] + t*(pb[0]-pa[0]),
		pa[1] + t*(pb[1]-pa[1]),
		pa[2] + t*(pb[2]-pa[2]),
	}
}

// surfaceNormal estima a normal em um ponto do mundo: gradiente por
// diferença central, negado (densidade cresce para fora do sólido) e
// normalizado. Gradiente nulo retorna o vetor zero em vez de NaN.
func surfaceNormal(field density.Field, wx, wy, wz, step float32) [3]float32 {
	gx := field.Sample(wx+step, wy, wz) - field.Sample(wx-step, wy, wz)
	gy := field.Sample(wx, wy+step, wz) - field.Sample(wx, wy-step, wz)
	gz := field.Sample(wx, wy, wz+step) - field.Sample(wx, wy, wz-step)

	len2 := gx*gx + gy*gy + gz*gz
	if len2 == 0 {
		return [3]float32{}
	}
	inv := -1.0 / math32.Sqrt(len2)
	return [3]float32{gx * inv, gy * inv, gz * inv}
}

// gradientStep resolve o passo de diferença finita do campo, caindo no
// padrão quando o campo não define um.
func gradientStep(field density.Field, cellSize float32) float32 {
	step := field.GradientStep(cellSize)
	if step <= 0 {
		step = density.DefaultGradientStep(cellSize)
	}
	return step
}

// GenerateRegular roda o Marching Cubes clássico sobre a grade e anexa os
// triângulos a buf. Posições saem no espaço local do chunk; a amostragem
// do campo usa coordenadas de mundo (Origin + local), o que garante
// superfícies idênticas em chunks vizinhos sem costura.
//
// Determinístico: mesma grade e mesmo campo produzem buffers idênticos
// bit a bit, porque as células são varridas em ordem fixa (x mais rápido,
// depois y, depois z) sem nenhuma fonte de aleatoriedade.
func GenerateRegular(grid GridSpec, field density.Field, buf *MeshBuffer) error {
	if field == nil {
		return density.ErrNilField
	}
	grid.Sanitize()

	nx, ny, nz := grid.Cells[0], grid.Cells[1], grid.Cells[2]
	sx, sy, sz := nx+1, ny+1, nz+1

	// Amostra o reticulado inteiro uma vez; cada valor interior serve a
	// até oito células.
	samples := make([]float32, sx*sy*sz)
	i := 0
	for z := int32(0); z < sz; z++ {
		wz := grid.Origin.Z + float32(z)*grid.CellSize
		for y := int32(0); y < sy; y++ {
			wy := grid.Origin.Y + float32(y)*grid.CellSize
			for x := int32(0); x < sx; x++ {
				wx := grid.Origin.X + float32(x)*grid.CellSize
				samples[i] = field.Sample(wx, wy, wz) - grid.IsoLevel
				i++
			}
		}
	}

	step := gradientStep(field, grid.CellSize)

	var cornerVals [8]float32
	var cornerPos [8][3]float32

	for cz := int32(0); cz < nz; cz++ {
		for cy := int32(0); cy < ny; cy++ {
			for cx := int32(0); cx < nx; cx++ {
				caseIndex := 0
				for c := 0; c < 8; c++ {
					off := cubeCornerOffsets[c]
					lx := cx + off[0]
					ly := cy + off[1]
					lz := cz + off[2]
					v := samples[(lz*sy+ly)*sx+lx]
					cornerVals[c] = v
					if v < 0 {
						caseIndex |= 1 << c
					}
					cornerPos[c] = [3]float32{
						float32(lx) * grid.CellSize,
						float32(ly) * grid.CellSize,
						float32(lz) * grid.CellSize,
					}
				}

				if caseIndex == 0 || caseIndex == 255 {
					continue
				}

				row := &triTable[caseIndex]
				for t := 0; row[t] != -1; t += 3 {
					v0 := regularEdgeVertex(int(row[t]), &cornerPos, &cornerVals)
					v1 := regularEdgeVertex(int(row[t+1]), &cornerPos, &cornerVals)
					v2 := regularEdgeVertex(int(row[t+2]), &cornerPos, &cornerVals)

					n0 := surfaceNormal(field, grid.Origin.X+v0[0], grid.Origin.Y+v0[1], grid.Origin.Z+v0[2], step)
					n1 := surfaceNormal(field, grid.Origin.X+v1[0], grid.Origin.Y+v1[1], grid.Origin.Z+v1[2], step)
					n2 := surfaceNormal(field, grid.Origin.X+v2[0], grid.Origin.Y+v2[1], grid.Origin.Z+v2[2], step)

					buf.AddTriangle(v0, v1, v2, n0, n1, n2)
				}
			}
		}
	}

	return nil
}

// regularEdgeVertex posiciona o vértice sobre a aresta da célula.
func regularEdgeVertex(edge int, pos *[8][3]float32, vals *[8]float32) [3]float32 {
	a := cubeEdgeCorners[edge][0]
	b := cubeEdgeCorners[edge][1]
	return edgeLerp(pos[a], pos[b], vals[a], vals[b])
}
