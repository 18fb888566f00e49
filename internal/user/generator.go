package user

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zcrypto"
)

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars
)

// Generator produces user records from a ChaCha8 stream. It is not safe for
// concurrent use.
type Generator struct {
	cfg Config
	src *rand.ChaCha8
	rnd *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the random stream reproducible.
func WithSeed(seed [32]byte) Option {
	return func(g *Generator) {
		g.src = rand.NewChaCha8(seed)
	}
}

// WithClock replaces time.Now for the record timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator for cfg. Without WithSeed the stream is seeded
// from the system entropy source.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	if g.src == nil {
		seed, err := entropySeed()
		if err != nil {
			return nil, err
		}
		g.src = rand.NewChaCha8(seed)
	}
	g.rnd = rand.New(g.src)

	return g, nil
}

// Generate produces count independent records in order.
func (g *Generator) Generate(count int) ([]Record, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be a positive integer, got %d", ErrInvalidArgument, count)
	}

	records := make([]Record, count)
	for i := range records {
		records[i] = g.Record()
	}
	return records, nil
}

// Record produces a single record. CreatedAt and UpdatedAt share one instant.
func (g *Generator) Record() Record {
	first, middle, last := g.Name()
	now := g.now()
	return Record{
		ID:         g.id(),
		FirstName:  first,
		MiddleName: middle,
		LastName:   last,
		Email:      Email(first, last, g.cfg.EmailDomain),
		Password:   g.Password(g.cfg.PasswordLength),
		Gender:     g.cfg.Genders[g.rnd.IntN(len(g.cfg.Genders))],
		Age:        g.cfg.MinAge + g.rnd.IntN(g.cfg.MaxAge-g.cfg.MinAge+1),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Name samples first, middle and last names independently.
func (g *Generator) Name() (first, middle, last string) {
	return g.pick(firstNames), g.pick(firstNames), g.pick(lastNames)
}

// Password generates a password of the given length containing at least
// one character from each class (lower, upper, digit, symbol).
func (g *Generator) Password(length int) string {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	buf := make([]byte, length)
	buf[0] = g.pickByte(lowerChars)
	buf[1] = g.pickByte(upperChars)
	buf[2] = g.pickByte(digitChars)
	buf[3] = g.pickByte(symbolChars)
	for i := 4; i < length; i++ {
		buf[i] = g.pickByte(allPassChars)
	}

	g.rnd.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return string(buf)
}

// Email builds first.last@domain in lowercase.
func Email(first, last, domain string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain
}

// id draws a v4 UUID from the generator's stream.
func (g *Generator) id() string {
	u, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		// ChaCha8.Read never fails
		panic("uuid: " + err.Error())
	}
	return u.String()
}

func (g *Generator) pick(s []string) string {
	return s[g.rnd.IntN(len(s))]
}

func (g *Generator) pickByte(s string) byte {
	return s[g.rnd.IntN(len(s))]
}

func entropySeed() ([32]byte, error) {
	var seed [32]byte
	b, err := zcrypto.RandBytes(len(seed))
	if err != nil {
		return seed, fmt.Errorf("seed generator: %w", err)
	}
	copy(seed[:], b)
	return seed, nil
}
