package pixel

// Linear congruential recurrence parameters. These are part of the
// protection contract: the same seed must yield the same byte output on
// every platform, so the recurrence is fixed rather than delegated to a
// platform generator.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Generator is the seeded pseudo-random source driving the protection
// passes. One generator is owned by exactly one pipeline invocation and
// must not be shared across concurrent runs.
type Generator struct {
	state int64
}

// NewGenerator creates a generator from any integer seed. The seed is
// folded into the register range so negative seeds are valid.
func NewGenerator(seed int64) *Generator {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &Generator{state: s}
}

// advance steps the register once and returns the fraction state/modulus.
func (g *Generator) advance() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / lcgModulus
}

// NextFloat returns the next value in [0, 1).
func (g *Generator) NextFloat() float64 {
	return g.advance()
}

// NextInt returns the next integer in [min, max] inclusive.
func (g *Generator) NextInt(min, max int) int {
	return min + int(g.advance()*float64(max-min+1))
}
