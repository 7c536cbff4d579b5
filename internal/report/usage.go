package report

import (
	"hash/fnv"

	"nowgo/internal/wizard"
)

// AreaUsage is one slice of the queries-by-area breakdown.
type AreaUsage struct {
	Area    string
	Queries int
}

// PeriodUsage is one point of the queries-over-time series.
type PeriodUsage struct {
	Period  string
	Queries int
}

// UsageSeries builds the dashboard's mock analytics. The figures are
// illustrative, derived from a stable hash of the area names so the charts
// do not jitter between renders. At most the first five priority areas are
// charted; the final week reflects the real message count once the user
// has actually chatted.
func UsageSeries(priorityAreas []string, chatMessages int) ([]AreaUsage, []PeriodUsage) {
	areas := priorityAreas
	if len(areas) > 5 {
		areas = areas[:5]
	}
	byArea := make([]AreaUsage, 0, len(areas))
	for _, a := range areas {
		byArea = append(byArea, AreaUsage{
			Area:    wizard.TagLabel(a),
			Queries: 5 + stableMod(a, 20),
		})
	}

	week4 := 10 + stableMod("week-4", 18)
	if chatMessages > 0 {
		week4 = chatMessages
	}
	byPeriod := []PeriodUsage{
		{Period: "Week 1", Queries: 5 + stableMod("week-1", 15)},
		{Period: "Week 2", Queries: 8 + stableMod("week-2", 20)},
		{Period: "Week 3", Queries: 12 + stableMod("week-3", 25)},
		{Period: "Week 4", Queries: week4},
	}
	return byArea, byPeriod
}

func stableMod(s string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % uint32(n))
}
