package simulator

import (
	"math"
	"math/rand"
	"time"
)

// Economy models daily platform growth. User inflow follows a Bass
// diffusion curve bounded by market potential; developer and game growth
// react to audience size and competition.
type Economy struct {
	rng *rand.Rand
}

func NewEconomy(rng *rand.Rand) *Economy {
	return &Economy{rng: rng}
}

const (
	marketPotential      = 300_000_000
	innovationCoeff      = 0.0000005
	imitationCoeff       = 0.002
	gamesSaturationPoint = 50_000
	maxDailyGrowthRate   = 0.05
)

// DailyUserGrowth estimates how many users join the platform today.
func (e *Economy) DailyUserGrowth(currentUsers, currentGames int64, month time.Month) float64 {
	users := float64(currentUsers)
	games := float64(currentGames)

	// Bass diffusion: innovators plus imitators, shrinking toward the
	// market potential.
	innovation := innovationCoeff * (marketPotential - users)
	imitation := imitationCoeff * (users / marketPotential) * (marketPotential - users)
	bassGrowth := innovation + imitation

	var gamesAttraction float64
	if games < gamesSaturationPoint {
		factor := 0.1 * (1 - games/gamesSaturationPoint)
		gamesAttraction = math.Max(games*factor, 550)
	} else {
		gamesAttraction = games * 0.01
	}

	// Metcalfe-style network effect, capped so it cannot run away.
	networkEffect := 1.0
	if currentUsers > 1000 {
		networkValue := math.Max(1, math.Pow(users, 1.1)/1e5)
		networkEffect = math.Min(2.5, 1+math.Log10(networkValue)*0.3)
	}

	seasonal := SeasonalMultiplier(month)
	inflow := (bassGrowth + gamesAttraction) * networkEffect * seasonal
	inflow *= 0.6 + e.rng.Float64()*0.8

	maxDaily := users * maxDailyGrowthRate
	return math.Min(inflow, maxDaily)
}

// DailyDeveloperGrowth estimates how many studios join today. Bigger
// audiences attract studios; crowded markets push back.
func (e *Economy) DailyDeveloperGrowth(currentDevs, currentUsers int64) float64 {
	audienceFactor := 1.0
	if currentUsers > 10_000 {
		audienceFactor = math.Log10(math.Max(1, float64(currentUsers)/10_000))*1.5 + 1
	}

	competitionFactor := 1.0
	if currentDevs > 5000 {
		competitionFactor = 5000 / float64(currentDevs)
	}

	probability := 0.2 * audienceFactor * competitionFactor
	if probability <= 0 {
		return 0
	}
	return math.Max(0, e.rng.NormFloat64()*math.Sqrt(probability)+probability)
}

// DailyGameGrowth estimates how many games are released today, driven by
// demand, crowding, and trend noise.
func (e *Economy) DailyGameGrowth(activeDevs, currentGames, currentUsers int64) float64 {
	demandFactor := math.Min(math.Pow(float64(currentUsers), 0.1), 10)

	var uniquenessFactor float64
	switch {
	case currentGames < 1000:
		uniquenessFactor = 1.0
	case currentGames < 10_000:
		uniquenessFactor = 0.8
	case currentGames < 50_000:
		uniquenessFactor = 0.55
	default:
		uniquenessFactor = 0.3
	}

	trendFactor := 0.5 + e.rng.Float64()

	expected := float64(activeDevs) * demandFactor * uniquenessFactor * trendFactor
	if expected <= 0 {
		return 0
	}
	return math.Max(0, e.rng.NormFloat64()*math.Sqrt(expected)+expected)
}
