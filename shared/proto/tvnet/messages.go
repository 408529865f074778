// Package tvnet define o protocolo do servidor TerraVox: envelopes gob
// sobre mensagens binárias de WebSocket. O servidor roda o terreno e
// transmite malhas prontas; o cliente só envia o foco.
package tvnet

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"TerraVox/shared/isomesh"
	"TerraVox/shared/util"
)

// MsgType identifica o conteúdo de um Envelope.
type MsgType uint8

const (
	MsgServerStatus MsgType = iota + 1
	MsgFocusUpdate
	MsgChunkMesh
	MsgChunkRemove
)

func (t MsgType) String() string {
	switch t {
	case MsgServerStatus:
		return "ServerStatus"
	case MsgFocusUpdate:
		return "FocusUpdate"
	case MsgChunkMesh:
		return "ChunkMesh"
	case MsgChunkRemove:
		return "ChunkRemove"
	}
	return fmt.Sprintf("MsgType(%d)", uint8(t))
}

// Envelope embrulha qualquer mensagem do protocolo.
type Envelope struct {
	Type    MsgType
	Payload []byte
}

// ServerStatus é enviado na conexão: parâmetros do mundo que o cliente
// precisa para posicionar e desenhar os chunks.
type ServerStatus struct {
	Message string
	Extent  float32
	Levels  int32
	Seed    int64
}

// FocusUpdate é a posição de interesse do cliente (mundo).
type FocusUpdate struct {
	X, Y, Z float32
}

// ChunkMesh carrega a malha publicada de um chunk: buffers planos no
// espaço local do chunk, mais o nível de LOD e as faces de transição
// para depuração no cliente.
type ChunkMesh struct {
	Coord       util.ChunkCoord
	Level       int32
	Version     uint64
	Transitions uint8
	Vertices    []float32
	Normals     []float32
	Indices     []uint32
}

// Geometry reconstrói os buffers como GeometryData.
func (m *ChunkMesh) Geometry() isomesh.GeometryData {
	return isomesh.GeometryData{
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Indices:  m.Indices,
	}
}

// NewChunkMesh monta a mensagem a partir de uma malha publicada.
func NewChunkMesh(coord util.ChunkCoord, level int32, version uint64, needs util.FaceSet, geo isomesh.GeometryData) *ChunkMesh {
	return &ChunkMesh{
		Coord:       coord,
		Level:       level,
		Version:     version,
		Transitions: uint8(needs),
		Vertices:    geo.Vertices,
		Normals:     geo.Normals,
		Indices:     geo.Indices,
	}
}

// ChunkRemove avisa que um chunk saiu do conjunto visível do servidor.
type ChunkRemove struct {
	Coord util.ChunkCoord
}

// Encode serializa uma mensagem dentro de um Envelope, pronto para ir
// no fio como mensagem binária.
func Encode(t MsgType, msg interface{}) ([]byte, error) {
	var payload bytes.Buffer
	if msg != nil {
		if err := gob.NewEncoder(&payload).Encode(msg); err != nil {
			return nil, fmt.Errorf("tvnet: falha ao codificar payload %v: %w", t, err)
		}
	}

	var out bytes.Buffer
	env := Envelope{Type: t, Payload: payload.Bytes()}
	if err := gob.NewEncoder(&out).Encode(&env); err != nil {
		return nil, fmt.Errorf("tvnet: falha ao codificar envelope %v: %w", t, err)
	}
	return out.Bytes(), nil
}

// Decode lê um Envelope do fio.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return nil, fmt.Errorf("tvnet: envelope inválido: %w", err)
	}
	return &env, nil
}

// DecodePayload desempacota o conteúdo do envelope em msg.
func (e *Envelope) DecodePayload(msg interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(e.Payload)).Decode(msg); err != nil {
		return fmt.Errorf("tvnet: payload %v inválido: %w", e.Type, err)
	}
	return nil
}
