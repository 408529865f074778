package terrain

import "testing"

func TestPoolAcquireUntilExhausted(t *testing.T) {
	p := NewPool(2, 4)

	var got []*Chunk
	for i := 0; i < 4; i++ {
		c, err := p.Acquire()
		if err != nil {
			t.Fatalf("acquire %d falhou: %v", i, err)
		}
		if c.State() != StateUnconfigured {
			t.Errorf("chunk %d saiu em %v, esperava Unconfigured", i, c.State())
		}
		got = append(got, c)
	}

	if _, err := p.Acquire(); err != ErrPoolExhausted {
		t.Fatalf("acquire além do máximo: esperava ErrPoolExhausted, veio %v", err)
	}
	if p.InUse() != 4 || p.Available() != 0 {
		t.Errorf("contadores errados: em uso %d, disponíveis %d", p.InUse(), p.Available())
	}

	p.Release(got[1])
	if p.InUse() != 3 || p.Available() != 1 {
		t.Errorf("após release: em uso %d, disponíveis %d", p.InUse(), p.Available())
	}
}

// Handles são estáveis: o mesmo slot volta com o mesmo handle após um
// ciclo de release/acquire.
func TestPoolHandleStability(t *testing.T) {
	p := NewPool(0, 2)

	a, err := p.Acquire()
	if err != nil {
		t.Fatalf("acquire falhou: %v", err)
	}
	h := a.Handle

	p.Release(a)
	if a.State() != StatePooled {
		t.Errorf("chunk liberado em %v, esperava Pooled", a.State())
	}

	b, err := p.Acquire()
	if err != nil {
		t.Fatalf("reacquire falhou: %v", err)
	}
	if b.Handle != h || b != a {
		t.Errorf("slot não foi reusado: handle %d vs %d", b.Handle, h)
	}
}

func TestPoolPrewarmClampedToMax(t *testing.T) {
	p := NewPool(10, 3)
	if p.Available() != 3 {
		t.Fatalf("disponíveis: veio %d, esperava 3", p.Available())
	}
	for i := 0; i < 3; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("acquire %d falhou: %v", i, err)
		}
	}
	if _, err := p.Acquire(); err != ErrPoolExhausted {
		t.Fatalf("esperava ErrPoolExhausted, veio %v", err)
	}
}

func TestPoolReleaseForeignChunk(t *testing.T) {
	p := NewPool(1, 1)
	before := p.InUse()

	// Chunk que nunca passou pelo pool: só loga, não corrompe o freelist.
	p.Release(&Chunk{Handle: 99})
	p.Release(nil)

	if p.InUse() != before {
		t.Errorf("release de chunk alheio mudou os contadores")
	}
}

func TestPoolReleaseTwice(t *testing.T) {
	p := NewPool(0, 2)
	c, err := p.Acquire()
	if err != nil {
		t.Fatalf("acquire falhou: %v", err)
	}

	p.Release(c)
	p.Release(c) // segundo release é no-op

	if p.InUse() != 0 || p.Available() != 2 {
		t.Errorf("release duplo corrompeu contadores: em uso %d, disponíveis %d", p.InUse(), p.Available())
	}
}
