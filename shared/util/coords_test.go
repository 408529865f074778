package util

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestWorldToChunkCoord(t *testing.T) {
	cases := []struct {
		name   string
		pos    rl.Vector3
		extent float32
		want   ChunkCoord
	}{
		{"origem", rl.Vector3{}, 16, ChunkCoord{0, 0, 0}},
		{"dentro do primeiro chunk", rl.Vector3{X: 15.9, Y: 0.1, Z: 8}, 16, ChunkCoord{0, 0, 0}},
		{"na fronteira", rl.Vector3{X: 16, Y: 32, Z: 48}, 16, ChunkCoord{1, 2, 3}},
		{"negativo usa floor, não truncamento", rl.Vector3{X: -0.1, Y: -16, Z: -16.1}, 16, ChunkCoord{-1, -1, -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WorldToChunkCoord(tc.pos, tc.extent); !got.Equals(tc.want) {
				t.Errorf("veio %v, esperava %v", got, tc.want)
			}
		})
	}
}

func TestChunkCoordOriginCenter(t *testing.T) {
	c := ChunkCoord{X: -1, Y: 0, Z: 2}

	o := c.Origin(16)
	if o.X != -16 || o.Y != 0 || o.Z != 32 {
		t.Errorf("origem: veio %v", o)
	}

	mid := c.Center(16)
	if mid.X != -8 || mid.Y != 8 || mid.Z != 40 {
		t.Errorf("centro: veio %v", mid)
	}

	// Origin e WorldToChunkCoord devem ser inversos no canto do chunk
	if back := WorldToChunkCoord(o, 16); !back.Equals(c) {
		t.Errorf("ida e volta: veio %v", back)
	}
}

func TestFaceNeighborOpposite(t *testing.T) {
	c := ChunkCoord{X: 1, Y: 2, Z: 3}
	for f := Face(0); f < FaceCount; f++ {
		n := c.Neighbor(f)
		if n.Equals(c) {
			t.Errorf("face %v: vizinho igual ao próprio chunk", f)
		}
		// O vizinho através da face oposta volta ao chunk original
		if back := n.Neighbor(f.Opposite()); !back.Equals(c) {
			t.Errorf("face %v: ida e volta veio %v", f, back)
		}
		if f.Opposite().Opposite() != f {
			t.Errorf("face %v: oposta da oposta veio %v", f, f.Opposite().Opposite())
		}
	}
}

func TestFaceSet(t *testing.T) {
	var s FaceSet
	if !s.Empty() {
		t.Fatal("conjunto novo deveria estar vazio")
	}

	s = s.With(FaceXPos).With(FaceYNeg)
	if !s.Has(FaceXPos) || !s.Has(FaceYNeg) {
		t.Errorf("faces adicionadas ausentes: %v", s)
	}
	if s.Has(FaceXNeg) || s.Has(FaceZPos) {
		t.Errorf("faces não adicionadas presentes: %v", s)
	}

	// With é idempotente
	if s.With(FaceXPos) != s {
		t.Error("With repetido alterou o conjunto")
	}

	if got := s.String(); got != "[+X -Y]" {
		t.Errorf("String: veio %q", got)
	}
}
