package density

import (
	"github.com/chewxy/math32"
)

// Sphere é um campo esférico: negativo dentro do raio, positivo fora.
type Sphere struct {
	CenterX, CenterY, CenterZ float32
	Radius                    float32
}

// Sample implementa Field.
func (s Sphere) Sample(x, y, z float32) float32 {
	dx := x - s.CenterX
	dy := y - s.CenterY
	dz := z - s.CenterZ
	return math32.Sqrt(dx*dx+dy*dy+dz*dz) - s.Radius
}

// GradientStep implementa Field delegando ao passo padrão.
func (s Sphere) GradientStep(cellSize float32) float32 { return 0 }

// HalfSpace é um semi-espaço horizontal: sólido abaixo de Height.
type HalfSpace struct {
	Height float32
}

// Sample implementa Field.
func (h HalfSpace) Sample(x, y, z float32) float32 {
	return y - h.Height
}

// GradientStep implementa Field delegando ao passo padrão.
func (h HalfSpace) GradientStep(cellSize float32) float32 { return 0 }

// NoiseTerrain é o campo de terreno da demo: ruído de valor em oitavas
// combinado com um gradiente de altitude, ao estilo de geradores de
// densidade 3D (permite cavernas e saliências, não só heightmap).
type NoiseTerrain struct {
	Seed        int64
	Scale       float32 // frequência do ruído (padrão 1/64)
	BaseHeight  float32 // nível alvo da superfície
	Gradient    float32 // força do gradiente de altitude
	Octaves     int
	Persistence float32
	Lacunarity  float32
}

// NewNoiseTerrain cria um terreno de ruído com os parâmetros padrão.
func NewNoiseTerrain(seed int64) *NoiseTerrain {
	return &NoiseTerrain{
		Seed:        seed,
		Scale:       1.0 / 64.0,
		BaseHeight:  0.0,
		Gradient:    24.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Sample implementa Field. Negativo = sólido, então o gradiente de
// altitude entra com sinal invertido em relação ao ruído bruto.
func (t *NoiseTerrain) Sample(x, y, z float32) float32 {
	nx := x * t.Scale
	ny := y * t.Scale
	nz := z * t.Scale

	// Ruído em [0,1] normalizado para [-1,1]
	n := octaveNoise3D(nx, ny, nz, t.Seed, t.Octaves, t.Persistence, t.Lacunarity)
	n = n*2.0 - 1.0

	// Acima de BaseHeight a densidade cresce (vazio); abaixo, afunda (sólido).
	heightTerm := (y - t.BaseHeight) / t.Gradient

	return heightTerm + n
}

// GradientStep implementa Field. O ruído é suave na escala da célula,
// então o passo padrão serve.
func (t *NoiseTerrain) GradientStep(cellSize float32) float32 { return 0 }
