// Package generator synthesizes fake expense records.
//
// The vocabularies, the random seed and the clock are explicit
// configuration so that callers can get reproducible batches.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"

	"spesegen/internal/core"
)

const (
	MinAmount   = 50.0
	MaxAmount   = 1000.0
	MinCashback = 0.0
	MaxCashback = 50.0

	// MaxDescriptionLen bounds the generated description, in characters.
	MaxDescriptionLen = 30
)

// Config holds the generator fixtures.
type Config struct {
	Categories   []string
	PaymentModes []string
	// Seed makes output deterministic when non-zero.
	Seed uint64
	// Now returns the current time; it decides the calendar year of dates.
	Now func() time.Time
}

// DefaultConfig returns the closed vocabularies and a random seed.
func DefaultConfig() Config {
	return Config{
		Categories:   append([]string(nil), core.Categories...),
		PaymentModes: append([]string(nil), core.PaymentModes...),
		Now:          time.Now,
	}
}

// Generator produces synthetic records. It is safe for concurrent use.
type Generator struct {
	mu           sync.Mutex
	categories   []string
	paymentModes []string
	rng          *rand.Rand
	faker        *gofakeit.Faker
	now          func() time.Time
}

// New builds a generator from cfg.
func New(cfg Config) (*Generator, error) {
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("%w: empty category set", core.ErrInvalidArgument)
	}
	if len(cfg.PaymentModes) == 0 {
		return nil, fmt.Errorf("%w: empty payment mode set", core.ErrInvalidArgument)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Generator{
		categories:   append([]string(nil), cfg.Categories...),
		paymentModes: append([]string(nil), cfg.PaymentModes...),
		rng:          rand.New(rand.NewPCG(seed, seed>>1|1)),
		faker:        gofakeit.New(seed),
		now:          now,
	}, nil
}

// Generate returns count synthetic records labelled with month. The month
// label is stored verbatim and is not checked against the generated dates.
func (g *Generator) Generate(month string, count int) ([]core.Expense, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", core.ErrInvalidArgument, count)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	year := g.now().Year()
	out := make([]core.Expense, 0, count)
	for range count {
		out = append(out, core.Expense{
			Date:        g.dateInYear(year),
			Category:    g.categories[g.rng.IntN(len(g.categories))],
			PaymentMode: g.paymentModes[g.rng.IntN(len(g.paymentModes))],
			Description: g.description(),
			AmountPaid:  core.RoundAmount(g.uniform(MinAmount, MaxAmount)),
			Cashback:    core.RoundAmount(g.uniform(MinCashback, MaxCashback)),
			Month:       month,
		})
	}
	return out, nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) dateInYear(year int) core.Date {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := start.AddDate(1, 0, 0).Sub(start).Hours() / 24
	return core.Date{Time: start.AddDate(0, 0, g.rng.IntN(int(days)))}
}

// description builds short pseudo-text, capitalized and ending in a period.
func (g *Generator) description() string {
	var b strings.Builder
	for {
		w := strings.ToLower(g.faker.Word())
		if w == "" {
			continue
		}
		if b.Len() == 0 {
			if utf8.RuneCountInString(w) > MaxDescriptionLen-1 {
				w = string([]rune(w)[:MaxDescriptionLen-1])
			}
			r, size := utf8.DecodeRuneInString(w)
			b.WriteRune(unicode.ToUpper(r))
			b.WriteString(w[size:])
			continue
		}
		// room for the separator and the final period
		if utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(w)+1 > MaxDescriptionLen {
			break
		}
		b.WriteByte(' ')
		b.WriteString(w)
		if g.rng.IntN(4) == 0 {
			break
		}
	}
	b.WriteByte('.')
	return b.String()
}
