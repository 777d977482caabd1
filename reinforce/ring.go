package reinforce

import "github.com/hantao-zhou/random-walk/lattice"

// ring is a growable FIFO of edges backed by a circular buffer.
type ring struct {
	buf  []lattice.Edge
	head int
	n    int
}

func (r *ring) len() int { return r.n }

// grow ensures capacity for at least c elements, preserving order.
func (r *ring) grow(c int) {
	if c <= len(r.buf) {
		return
	}
	buf := make([]lattice.Edge, c)
	r.copyTo(buf)
	r.buf = buf
	r.head = 0
}

func (r *ring) push(e lattice.Edge) {
	if r.n == len(r.buf) {
		r.grow(2*len(r.buf) + 8)
	}
	r.buf[(r.head+r.n)%len(r.buf)] = e
	r.n++
}

// pop removes and returns the oldest element. The caller checks len() > 0.
func (r *ring) pop() lattice.Edge {
	e := r.buf[r.head]
	r.buf[r.head] = lattice.Edge{}
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return e
}

func (r *ring) slice() []lattice.Edge {
	out := make([]lattice.Edge, r.n)
	r.copyTo(out)
	return out
}

func (r *ring) copyTo(dst []lattice.Edge) {
	if r.n == 0 {
		return
	}
	tail := r.head + r.n
	if tail <= len(r.buf) {
		copy(dst, r.buf[r.head:tail])
		return
	}
	k := copy(dst, r.buf[r.head:])
	copy(dst[k:], r.buf[:tail-len(r.buf)])
}
