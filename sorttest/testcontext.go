package sorttest

import (
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// TestContext carries the seeded sources every sorting test draws its input
// from. Seeding everything from one place keeps the generated data the same
// from run to run, which matters when a failure needs replaying. It holds a
// testing.TB rather than a *testing.T so benchmarks can share the generator
// catalogue.
type TestContext struct {
	T     testing.TB
	Rand  *rand.Rand
	Faker *gofakeit.Faker
}

type TestConfig struct {
	// Seed fixes the RNG. It is normal to force it to some fixed value so
	// that the generated data is the same from run to run.
	Seed int64
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	return TestContext{
		T:     t,
		Rand:  rand.New(rand.NewSource(cfg.Seed)),
		Faker: gofakeit.New(cfg.Seed),
	}
}
