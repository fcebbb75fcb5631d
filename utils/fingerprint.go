package utils

import (
	"hash"
	"hash/fnv"
)

func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

// Hasher accumulates an FNV-64a fingerprint from tagged fields. Optional
// values write a presence byte first so that absent and zero never collide.
type Hasher struct {
	h hash.Hash64
}

func NewHasher(tag string) *Hasher {
	h := &Hasher{h: fnv.New64a()}
	h.h.Write([]byte(tag))
	h.h.Write([]byte{':'})
	return h
}

func (h *Hasher) Text(s string) *Hasher {
	h.Uint64(uint64(len(s)))
	h.h.Write([]byte(s))
	return h
}

func (h *Hasher) Uint64(u uint64) *Hasher {
	h.h.Write(U64ToBytes(u))
	return h
}

func (h *Hasher) Bool(b bool) *Hasher {
	if b {
		h.h.Write([]byte{1})
	} else {
		h.h.Write([]byte{0})
	}
	return h
}

func (h *Hasher) OptInt(v int, ok bool) *Hasher {
	h.Bool(ok)
	if ok {
		h.Uint64(uint64(int64(v)))
	}
	return h
}

func (h *Hasher) OptBool(v, ok bool) *Hasher {
	h.Bool(ok)
	if ok {
		h.Bool(v)
	}
	return h
}

func (h *Hasher) Sum64() uint64 {
	return h.h.Sum64()
}
