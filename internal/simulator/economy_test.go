package simulator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestEconomy() *Economy {
	return NewEconomy(rand.New(rand.NewSource(1)))
}

func TestDailyUserGrowth(t *testing.T) {
	t.Run("never exceeds the daily cap", func(t *testing.T) {
		econ := newTestEconomy()
		for i := 0; i < 100; i++ {
			growth := econ.DailyUserGrowth(10_000, 500, time.December)
			assert.GreaterOrEqual(t, growth, 0.0)
			assert.LessOrEqual(t, growth, 10_000*maxDailyGrowthRate)
		}
	})

	t.Run("an empty platform does not grow", func(t *testing.T) {
		econ := newTestEconomy()
		assert.Zero(t, econ.DailyUserGrowth(0, 0, time.June))
	})

	t.Run("larger catalogues attract more users", func(t *testing.T) {
		// Average over many draws so the random factor washes out.
		small, large := 0.0, 0.0
		econSmall := NewEconomy(rand.New(rand.NewSource(2)))
		econLarge := NewEconomy(rand.New(rand.NewSource(2)))
		for i := 0; i < 500; i++ {
			small += econSmall.DailyUserGrowth(1_000_000, 100, time.April)
			large += econLarge.DailyUserGrowth(1_000_000, 20_000, time.April)
		}
		assert.Greater(t, large, small)
	})
}

func TestDailyDeveloperGrowth(t *testing.T) {
	t.Run("is non-negative", func(t *testing.T) {
		econ := newTestEconomy()
		for i := 0; i < 100; i++ {
			assert.GreaterOrEqual(t, econ.DailyDeveloperGrowth(10, 50_000), 0.0)
		}
	})

	t.Run("crowded markets slow down", func(t *testing.T) {
		crowded, sparse := 0.0, 0.0
		econCrowded := NewEconomy(rand.New(rand.NewSource(3)))
		econSparse := NewEconomy(rand.New(rand.NewSource(3)))
		for i := 0; i < 500; i++ {
			crowded += econCrowded.DailyDeveloperGrowth(100_000, 1_000_000)
			sparse += econSparse.DailyDeveloperGrowth(100, 1_000_000)
		}
		assert.Greater(t, sparse, crowded)
	})
}

func TestDailyGameGrowth(t *testing.T) {
	t.Run("is non-negative", func(t *testing.T) {
		econ := newTestEconomy()
		for i := 0; i < 100; i++ {
			assert.GreaterOrEqual(t, econ.DailyGameGrowth(50, 2_000, 100_000), 0.0)
		}
	})

	t.Run("no developers means no releases", func(t *testing.T) {
		econ := newTestEconomy()
		assert.Zero(t, econ.DailyGameGrowth(0, 0, 100_000))
	})

	t.Run("saturated catalogues release fewer titles", func(t *testing.T) {
		fresh, saturated := 0.0, 0.0
		econFresh := NewEconomy(rand.New(rand.NewSource(4)))
		econSaturated := NewEconomy(rand.New(rand.NewSource(4)))
		for i := 0; i < 500; i++ {
			fresh += econFresh.DailyGameGrowth(100, 500, 100_000)
			saturated += econSaturated.DailyGameGrowth(100, 80_000, 100_000)
		}
		assert.Greater(t, fresh, saturated)
	})
}
