package terrain

import (
	"errors"
	"log"

	"TerraVox/shared/util"
)

// ErrPoolExhausted indica que o pool atingiu a capacidade máxima e não
// há chunk livre para adquirir.
var ErrPoolExhausted = errors.New("terrain: pool de chunks esgotado")

// Pool recicla chunks para evitar alocação por movimento de foco. Os
// slots são estáveis: o Handle de um chunk é o índice do seu slot e
// nunca muda, mesmo através de ciclos de release/acquire.
type Pool struct {
	slots []*Chunk
	free  []int32
	max   int32
}

// NewPool cria um pool com prewarm chunks pré-alocados e limite máximo.
// prewarm acima do máximo é reduzido ao máximo.
func NewPool(prewarm, max int32) *Pool {
	max = util.Max(max, 0)
	prewarm = util.ClampInt(prewarm, 0, max)

	p := &Pool{
		slots: make([]*Chunk, 0, max),
		free:  make([]int32, 0, max),
	}
	p.max = max

	for i := int32(0); i < prewarm; i++ {
		p.slots = append(p.slots, &Chunk{Handle: i, state: StatePooled})
		p.free = append(p.free, i)
	}
	return p
}

// Acquire retira um chunk do pool, criando um slot novo se ainda houver
// capacidade. O chunk sai em StateUnconfigured.
func (p *Pool) Acquire() (*Chunk, error) {
	var idx int32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else if int32(len(p.slots)) < p.max {
		idx = int32(len(p.slots))
		p.slots = append(p.slots, &Chunk{Handle: idx, state: StatePooled})
	} else {
		return nil, ErrPoolExhausted
	}

	c := p.slots[idx]
	c.state = StateUnconfigured
	return c, nil
}

// Release devolve um chunk ao pool, limpando seu conteúdo. Liberar um
// chunk que não pertence ao pool é um bug de chamada e só gera log.
func (p *Pool) Release(c *Chunk) {
	if c == nil {
		return
	}
	if c.Handle < 0 || int(c.Handle) >= len(p.slots) || p.slots[c.Handle] != c {
		log.Printf("[Pool] release de chunk desconhecido (handle %d)", c.Handle)
		return
	}
	if c.state == StatePooled {
		return
	}
	c.state = StateReleasing
	c.reset()
	p.free = append(p.free, c.Handle)
}

// byHandle retorna o chunk do slot, ou nil se o handle não existe.
func (p *Pool) byHandle(handle int32) *Chunk {
	if handle < 0 || int(handle) >= len(p.slots) {
		return nil
	}
	return p.slots[handle]
}

// InUse retorna o número de chunks fora do pool.
func (p *Pool) InUse() int { return len(p.slots) - len(p.free) }

// Available retorna quantos chunks ainda podem ser adquiridos sem
// esgotar o pool.
func (p *Pool) Available() int { return int(p.max) - p.InUse() }

// destroy marca todos os slots como destruídos e descarta o pool.
func (p *Pool) destroy() {
	for _, c := range p.slots {
		c.reset()
		c.state = StateDestroyed
	}
	p.slots = nil
	p.free = nil
}
