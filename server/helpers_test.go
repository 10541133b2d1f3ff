package main

import (
	"math"
	"testing"

	"tight-lines/internal/game"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	catalog, err := game.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return NewWorld(game.DefaultConfig(), catalog, NewProgressStore())
}

// reader walks a big-endian binary message
type reader struct {
	buf []byte
	off int
	t   *testing.T
}

func (r *reader) u8() byte {
	r.t.Helper()
	if r.off >= len(r.buf) {
		r.t.Fatalf("read past end at %d", r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b
}

func (r *reader) u16() uint16 {
	return uint16(r.u8())<<8 | uint16(r.u8())
}

func (r *reader) u32() uint32 {
	return uint32(r.u16())<<16 | uint32(r.u16())
}

func (r *reader) u64() uint64 {
	return uint64(r.u32())<<32 | uint64(r.u32())
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) f64() float64 {
	return math.Float64frombits(r.u64())
}

func (r *reader) str() string {
	n := int(r.u16())
	if r.off+n > len(r.buf) {
		r.t.Fatalf("string of %d bytes past end", n)
	}
	s := string(r.buf[r.off : r.off+n])
	r.off += n
	return s
}
