package isomesh

import (
	"TerraVox/shared/density"
	"TerraVox/shared/util"
)

// faceBasis orienta o estêncil de transição sobre uma face do chunk.
// Os eixos formam base destra com u × v = w apontando para fora, então
// as tabelas pré-orientadas valem para as seis faces sem caso especial.
type faceBasis struct {
	corner [3]int32 // canto da face em u=v=0, em unidades de célula
	u, v   [3]int32
	w      [3]int32
}

var faceBases = [util.FaceCount]faceBasis{
	util.FaceXNeg: {corner: [3]int32{0, 0, 0}, u: [3]int32{0, 0, 1}, v: [3]int32{0, 1, 0}, w: [3]int32{-1, 0, 0}},
	util.FaceXPos: {corner: [3]int32{1, 0, 0}, u: [3]int32{0, 1, 0}, v: [3]int32{0, 0, 1}, w: [3]int32{1, 0, 0}},
	util.FaceYNeg: {corner: [3]int32{0, 0, 0}, u: [3]int32{1, 0, 0}, v: [3]int32{0, 0, 1}, w: [3]int32{0, -1, 0}},
	util.FaceYPos: {corner: [3]int32{0, 1, 0}, u: [3]int32{0, 0, 1}, v: [3]int32{1, 0, 0}, w: [3]int32{0, 1, 0}},
	util.FaceZNeg: {corner: [3]int32{0, 0, 0}, u: [3]int32{0, 1, 0}, v: [3]int32{1, 0, 0}, w: [3]int32{0, 0, -1}},
	util.FaceZPos: {corner: [3]int32{0, 0, 1}, u: [3]int32{1, 0, 0}, v: [3]int32{0, 1, 0}, w: [3]int32{0, 0, 1}},
}

// faceCellCounts retorna as contagens de células da grade ao longo dos
// eixos u e v da face.
func faceCellCounts(f util.Face, cells [3]int32) (int32, int32) {
	switch f {
	case util.FaceXNeg:
		return cells[2], cells[1]
	case util.FaceXPos:
		return cells[1], cells[2]
	case util.FaceYNeg:
		return cells[0], cells[2]
	case util.FaceYPos:
		return cells[2], cells[0]
	case util.FaceZNeg:
		return cells[1], cells[0]
	default:
		return cells[0], cells[1]
	}
}

// transitionCoarseTie dá, para cada ponto grosso do estêncil, o canto
// fino coincidente na face. O valor amostrado no canto é reutilizado no
// ponto grosso: o sinal do lado grosso nunca diverge da máscara fina e
// as tabelas preservam o winding para fora em qualquer campo.
var transitionCoarseTie = [4]int{0, 2, 6, 8}

// GenerateTransitions anexa a buf as células de transição das faces
// marcadas em needs. Cada face marcada é coberta por blocos finos 2x2
// casados com uma célula do vizinho um nível mais grosso; os 9 pontos
// finos do estêncil ficam sobre o plano da face e os 4 grossos uma
// célula grossa (2x CellSize) para fora, de modo que toda a geometria
// emitida fica colada à face. Contagens ímpares deixam a última fileira
// sem remendo: a configuração de chunks força contagens pares quando o
// LOD adaptativo está ativo.
func GenerateTransitions(grid GridSpec, needs util.FaceSet, field density.Field, buf *MeshBuffer) error {
	if field == nil {
		return density.ErrNilField
	}
	if needs.Empty() {
		return nil
	}
	grid.Sanitize()

	step := gradientStep(field, grid.CellSize)
	coarse := 2 * grid.CellSize

	var pos [13][3]float32
	var vals [13]float32

	for f := util.Face(0); f < util.FaceCount; f++ {
		if !needs.Has(f) {
			continue
		}
		basis := &faceBases[f]
		cu, cv := faceCellCounts(f, grid.Cells)

		baseX := float32(basis.corner[0]*grid.Cells[0]) * grid.CellSize
		baseY := float32(basis.corner[1]*grid.Cells[1]) * grid.CellSize
		baseZ := float32(basis.corner[2]*grid.Cells[2]) * grid.CellSize

		for bv := int32(0); bv+1 < cv; bv += 2 {
			for bu := int32(0); bu+1 < cu; bu += 2 {
				mask := 0
				for p := 0; p < 13; p++ {
					off := transitionPointOffsets[p]
					du := float32(bu+off[0]) * grid.CellSize
					dv := float32(bv+off[1]) * grid.CellSize
					dw := float32(off[2]) * coarse

					lx := baseX + float32(basis.u[0])*du + float32(basis.v[0])*dv + float32(basis.w[0])*dw
					ly := baseY + float32(basis.u[1])*du + float32(basis.v[1])*dv + float32(basis.w[1])*dw
					lz := baseZ + float32(basis.u[2])*du + float32(basis.v[2])*dv + float32(basis.w[2])*dw

					pos[p] = [3]float32{lx, ly, lz}
					if p < 9 {
						d := field.Sample(grid.Origin.X+lx, grid.Origin.Y+ly, grid.Origin.Z+lz) - grid.IsoLevel
						vals[p] = d
						if d < 0 {
							mask |= 1 << p
						}
					}
				}
				for i, tie := range transitionCoarseTie {
					vals[9+i] = vals[tie]
				}

				if mask == 0 || mask == 0x1FF {
					continue
				}

				rec := transitionCellClass[mask]
				flip := rec&0x8000 != 0
				tris := transitionClassTriangles[rec&0x7FFF]
				defs := transitionVertexData[mask]

				cellVerts := make([][3]float32, len(defs))
				cellNorms := make([][3]float32, len(defs))
				for i, vd := range defs {
					a := vd >> 4
					b := vd & 0x0F
					v := edgeLerp(pos[a], pos[b], vals[a], vals[b])
					cellVerts[i] = v
					cellNorms[i] = surfaceNormal(field,
						grid.Origin.X+v[0], grid.Origin.Y+v[1], grid.Origin.Z+v[2], step)
				}

				for t := 0; t < len(tris); t += 3 {
					i0, i1, i2 := tris[t], tris[t+1], tris[t+2]
					if flip {
						i1, i2 = i2, i1
					}
					buf.AddTriangle(cellVerts[i0], cellVerts[i1], cellVerts[i2],
						cellNorms[i0], cellNorms[i1], cellNorms[i2])
				}
			}
		}
	}

	return nil
}
