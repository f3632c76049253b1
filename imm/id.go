package imm

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// idStack scopes widget ids: the same string under different parents hashes
// to different ids.
type idStack struct {
	seeds []uint64
}

func (s *idStack) top() uint64 {
	if len(s.seeds) == 0 {
		return 0
	}
	return s.seeds[len(s.seeds)-1]
}

// hash returns the id of str in the current scope. Never zero.
func (s *idStack) hash(str string) uint64 {
	h := fnv.New64a()
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], s.top())
	_, _ = h.Write(seed[:])
	_, _ = h.Write([]byte(str))
	if v := h.Sum64(); v != 0 {
		return v
	}
	return 1
}

func (s *idStack) push(id uint64) { s.seeds = append(s.seeds, id) }

func (s *idStack) pushInt(n int) { s.push(s.hash(strconv.Itoa(n))) }

func (s *idStack) pop() bool {
	if len(s.seeds) == 0 {
		return false
	}
	s.seeds = s.seeds[:len(s.seeds)-1]
	return true
}

func (s *idStack) depth() int { return len(s.seeds) }

func (s *idStack) reset() { s.seeds = s.seeds[:0] }
