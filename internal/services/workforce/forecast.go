package workforce

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/util"
)

// Forecast bounds, in percent.
const (
	BillableMin = 65.0
	BillableMax = 95.0
	InternalMin = 5.0
	InternalMax = 20.0

	billableSpread = 5.0
	internalSpread = 2.5
)

var hundred = decimal.NewFromInt(100)

// GenerateForecast produces periods weekly points for a location, starting
// from the Monday on or before now. Unknown locations use the aggregate
// location. The variance source is seeded by the current date, so repeated
// calls on the same day agree.
func (s *Service) GenerateForecast(periods int, locationID string) []models.ForecastPoint {
	if periods <= 0 {
		return []models.ForecastPoint{}
	}

	loc := s.Location(locationID)
	rates := loc.Rates()

	now := s.clock.Now()
	rng := rand.New(rand.NewSource(util.DateSeed(now)))
	monday := util.WeekStart(now)

	points := make([]models.ForecastPoint, 0, periods)
	for i := 0; i < periods; i++ {
		billable := clamp(rates.Billable+(rng.Float64()*2-1)*billableSpread, BillableMin, BillableMax)
		internal := clamp(rates.Internal+(rng.Float64()*2-1)*internalSpread, InternalMin, InternalMax)

		b := decimal.NewFromFloat(billable).Round(1)
		in := decimal.NewFromFloat(internal).Round(1)
		bench := hundred.Sub(b).Sub(in)

		points = append(points, models.ForecastPoint{
			PeriodLabel: util.WeekLabel(monday.AddDate(0, 0, i*util.DaysPerWeek)),
			Billable:    b.InexactFloat64(),
			Internal:    in.InexactFloat64(),
			Bench:       bench.InexactFloat64(),
		})
	}

	return points
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
