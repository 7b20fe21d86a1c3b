package core

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// noiseQuantum is the grid positions are snapped to before hashing
const noiseQuantum = 1e7

// NoiseSource returns a generator seeded only by the quantized position and
// an identity, so equal inputs always replay the same sequence
func NoiseSource(p Vec3, id uint64) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(c*noiseQuantum)))
		h.Write(buf[:])
	}
	return rand.New(rand.NewPCG(h.Sum64(), id))
}

// ObjectID returns the identity of o, or zero when it has none
func ObjectID(o Object) uint64 {
	if ided, ok := o.(Identified); ok {
		return ided.ID()
	}
	return 0
}
