// Package matchid generates time-sortable identifiers for scored matches.
package matchid

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/coder/quartz"
)

// Crockford's base32 alphabet; ids sort in creation order.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of every generated id
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// RandSource supplies the random half of an id. *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Generator builds UUIDv7-layout ids from a clock and a random source
type Generator struct {
	clock quartz.Clock
	rand  RandSource
}

// NewGenerator creates a generator. A nil clock uses the real clock and a nil
// source uses crypto/rand.
func NewGenerator(clock quartz.Clock, src RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rand: src}
}

// Generate creates an id with the real clock and crypto randomness
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new id
func (g *Generator) Generate() string {
	var id [16]byte

	// 48-bit millisecond timestamp, then version 7 and variant bits over random data
	ms := uint64(g.clock.Now("matchid").UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], ms<<16)
	if g.rand != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rand.Uint64()))
		binary.BigEndian.PutUint64(id[8:16], g.rand.Uint64())
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("matchid: crypto/rand failed: " + err.Error())
	}
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encoding.EncodeToString(id[:])
}

// Validate checks that id is a well formed match id
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match id must be %d characters, got %d", Length, len(id))
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", id, err)
	}
	if encoding.EncodeToString(raw) != id {
		return fmt.Errorf("invalid match id %q: non-canonical encoding", id)
	}
	if raw[6]>>4 != 7 {
		return fmt.Errorf("invalid match id %q: not a version 7 id", id)
	}
	return nil
}
