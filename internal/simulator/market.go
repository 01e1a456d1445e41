package simulator

import "time"

// Seasonal and weekday demand multipliers for the game market, loosely
// calibrated against Steam activity: a summer dip and a strong Q4.

var seasonalFactors = map[time.Month]float64{
	time.January:   1.15,
	time.February:  0.95,
	time.March:     1.05,
	time.April:     1.00,
	time.May:       0.98,
	time.June:      0.90,
	time.July:      0.85,
	time.August:    0.92,
	time.September: 1.10,
	time.October:   1.20,
	time.November:  1.25,
	time.December:  1.30,
}

// SeasonalMultiplier returns the demand multiplier for a month.
func SeasonalMultiplier(month time.Month) float64 {
	if factor, ok := seasonalFactors[month]; ok {
		return factor
	}
	return 1.0
}

// WeekdayMultiplier returns the demand multiplier for a weekday: weekends
// are busier, Mondays are slow.
func WeekdayMultiplier(day time.Weekday) float64 {
	switch day {
	case time.Saturday, time.Sunday:
		return 1.25
	case time.Monday:
		return 0.85
	default:
		return 1.0
	}
}
