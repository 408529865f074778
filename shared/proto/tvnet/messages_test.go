package tvnet

import (
	"testing"

	"TerraVox/shared/isomesh"
	"TerraVox/shared/util"
)

func TestChunkMeshRoundTrip(t *testing.T) {
	geo := isomesh.GeometryData{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}
	needs := util.FaceSet(0).With(util.FaceXPos).With(util.FaceYNeg)
	msg := NewChunkMesh(util.NewChunkCoord(-3, 0, 7), 1, 42, needs, geo)

	data, err := Encode(MsgChunkMesh, msg)
	if err != nil {
		t.Fatalf("Encode falhou: %v", err)
	}

	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode falhou: %v", err)
	}
	if env.Type != MsgChunkMesh {
		t.Fatalf("tipo: veio %v, esperava %v", env.Type, MsgChunkMesh)
	}

	var got ChunkMesh
	if err := env.DecodePayload(&got); err != nil {
		t.Fatalf("DecodePayload falhou: %v", err)
	}

	if !got.Coord.Equals(msg.Coord) || got.Level != 1 || got.Version != 42 {
		t.Errorf("cabeçalho divergiu: %+v", got)
	}
	if util.FaceSet(got.Transitions) != needs {
		t.Errorf("transições: veio %v, esperava %v", util.FaceSet(got.Transitions), needs)
	}

	back := got.Geometry()
	if len(back.Vertices) != len(geo.Vertices) || len(back.Indices) != len(geo.Indices) {
		t.Fatalf("buffers divergiram: %d/%d vértices, %d/%d índices",
			len(back.Vertices), len(geo.Vertices), len(back.Indices), len(geo.Indices))
	}
	for i := range geo.Vertices {
		if back.Vertices[i] != geo.Vertices[i] {
			t.Fatalf("vértice %d divergiu", i)
		}
	}
}

func TestFocusUpdateRoundTrip(t *testing.T) {
	data, err := Encode(MsgFocusUpdate, &FocusUpdate{X: 1.5, Y: -2, Z: 300})
	if err != nil {
		t.Fatalf("Encode falhou: %v", err)
	}

	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode falhou: %v", err)
	}

	var got FocusUpdate
	if err := env.DecodePayload(&got); err != nil {
		t.Fatalf("DecodePayload falhou: %v", err)
	}
	if got.X != 1.5 || got.Y != -2 || got.Z != 300 {
		t.Errorf("foco divergiu: %+v", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xFF, 0x00, 0x13}); err == nil {
		t.Fatal("lixo no fio deveria falhar o Decode")
	}
}
