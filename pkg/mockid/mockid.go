// Package mockid generates identifiers that are format-compatible with real
// entity ids, content identifiers and transaction hashes, but are produced
// locally from a pseudo-random source. Nothing here is cryptographic and no
// uniqueness is formally guaranteed; collisions are accepted as vanishingly
// unlikely for a simulation.
package mockid

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	hexAlphabet    = "0123456789abcdef"

	// CIDLength is the total length of a mock content identifier ("Qm" + 42).
	CIDLength = 44
	// TxHashLength is the total length of a mock transaction hash ("0x" + 64).
	TxHashLength = 66
)

// Generator produces mock identifiers. The zero value is not usable; use New.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a Generator seeded from the global random source.
func New() *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
}

// NewWithSource returns a Generator with an explicit random source and clock,
// for deterministic tests.
func NewWithSource(src rand.Source, now func() time.Time) *Generator {
	return &Generator{rng: rand.New(src), now: now}
}

// ID returns prefix + 6 random base-36 characters + the last 4 base-36 digits
// of the current epoch-millisecond clock. Time-derived suffix biases ids
// toward rough chronological sortability.
func (g *Generator) ID(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i := 0; i < 6; i++ {
		b.WriteByte(base36Alphabet[g.rng.IntN(len(base36Alphabet))])
	}
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	b.WriteString(ts)
	return b.String()
}

// CID returns a base58-styled mock content identifier: "Qm" followed by 42
// characters from the base58 alphabet. Not a real CID.
func (g *Generator) CID() string {
	var b strings.Builder
	b.WriteString("Qm")
	for i := 0; i < CIDLength-2; i++ {
		b.WriteByte(base58Alphabet[g.rng.IntN(len(base58Alphabet))])
	}
	return b.String()
}

// TxHash returns "0x" followed by 64 random lowercase hex digits, shaped like
// an Ethereum transaction hash but tied to no transaction.
func (g *Generator) TxHash() string {
	return g.hexString(TxHashLength - 2)
}

// Address returns "0x" followed by 40 random lowercase hex digits. The result
// has no relation to any real keypair.
func (g *Generator) Address() string {
	return g.hexString(40)
}

func (g *Generator) hexString(n int) string {
	var b strings.Builder
	b.WriteString("0x")
	for i := 0; i < n; i++ {
		b.WriteByte(hexAlphabet[g.rng.IntN(len(hexAlphabet))])
	}
	return b.String()
}
