package density

import (
	"math"
	"testing"
)

func TestSphereSign(t *testing.T) {
	s := Sphere{CenterX: 0, CenterY: 0, CenterZ: 0, Radius: 5}

	cases := []struct {
		name    string
		x, y, z float32
		inside  bool
	}{
		{"centro", 0, 0, 0, true},
		{"perto da borda por dentro", 4.9, 0, 0, true},
		{"perto da borda por fora", 5.1, 0, 0, false},
		{"longe", 0, 20, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := s.Sample(tc.x, tc.y, tc.z)
			if (d < 0) != tc.inside {
				t.Errorf("Sample(%v,%v,%v) = %v, dentro=%v", tc.x, tc.y, tc.z, d, tc.inside)
			}
		})
	}
}

func TestHalfSpaceSign(t *testing.T) {
	h := HalfSpace{Height: 2}
	if d := h.Sample(100, 1, -50); d >= 0 {
		t.Errorf("abaixo da altura deveria ser sólido, veio %v", d)
	}
	if d := h.Sample(0, 3, 0); d <= 0 {
		t.Errorf("acima da altura deveria ser vazio, veio %v", d)
	}
	if d := h.Sample(0, 2, 0); d != 0 {
		t.Errorf("na superfície deveria ser zero, veio %v", d)
	}
}

// O ruído é uma função pura da posição e da seed: sem RNG caminhante,
// sem estado, a mesma amostra vale para qualquer ordem de chunks.
func TestNoiseDeterministic(t *testing.T) {
	a := NewNoiseTerrain(99)
	b := NewNoiseTerrain(99)

	points := [][3]float32{
		{0, 0, 0}, {1.5, -3.25, 100}, {-64, 12.5, -0.001}, {1e4, -1e4, 512},
	}
	for _, p := range points {
		va := a.Sample(p[0], p[1], p[2])
		vb := b.Sample(p[0], p[1], p[2])
		if va != vb {
			t.Errorf("amostra em %v divergiu: %v vs %v", p, va, vb)
		}
	}
}

func TestNoiseSeedMatters(t *testing.T) {
	a := NewNoiseTerrain(1)
	b := NewNoiseTerrain(2)

	diff := false
	for i := 0; i < 16 && !diff; i++ {
		p := float32(i) * 7.3
		if a.Sample(p, p*0.5, -p) != b.Sample(p, p*0.5, -p) {
			diff = true
		}
	}
	if !diff {
		t.Error("seeds diferentes produziram o mesmo campo")
	}
}

func TestValueNoiseRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		x := float32(i)*0.73 - 90
		y := float32(i)*1.31 + 4
		z := float32(i) * -0.17
		v := valueNoise3D(x, y, z, 7)
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			t.Fatalf("valueNoise3D(%v,%v,%v) = %v fora de [0,1]", x, y, z, v)
		}
	}
}

func TestFieldFuncDelegatesGradientStep(t *testing.T) {
	f := FieldFunc(func(x, y, z float32) float32 { return x })
	if s := f.GradientStep(2.0); s != 0 {
		t.Errorf("FieldFunc deveria delegar ao passo padrão, veio %v", s)
	}
	if s := DefaultGradientStep(2.0); s != 1.0 {
		t.Errorf("passo padrão: veio %v, esperava metade da célula", s)
	}
}
