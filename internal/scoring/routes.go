package scoring

import (
	"cmp"
	"slices"

	"github.com/mr1hm/go-route-safety/internal/models"
)

type RouteScore struct {
	Index         int     `json:"route_index"`
	RiskScore     float64 `json:"risk_score"`
	DurationScore float64 `json:"duration_score"`
	TotalScore    float64 `json:"total_score"`
}

// ScoreRoutes scores every route and returns the scores best first.
// Lower is better: one risk point weighs the same as one minute of travel.
func ScoreRoutes(routes []models.Route, zones models.Zones, f models.Factors) []RouteScore {
	scores := make([]RouteScore, 0, len(routes))

	for i := range routes {
		risk := routeRisk(routes[i].Path(), zones, f)
		duration := routes[i].DurationSeconds / 60

		scores = append(scores, RouteScore{
			Index:         i,
			RiskScore:     risk,
			DurationScore: duration,
			TotalScore:    risk + duration,
		})
	}

	// stable so equal totals keep the directions source's order
	slices.SortStableFunc(scores, func(a, b RouteScore) int {
		return cmp.Compare(a.TotalScore, b.TotalScore)
	})
	return scores
}

// RankRoutes returns route indices ordered best first.
func RankRoutes(routes []models.Route, zones models.Zones, f models.Factors) []int {
	scores := ScoreRoutes(routes, zones, f)
	order := make([]int, len(scores))
	for i, s := range scores {
		order[i] = s.Index
	}
	return order
}

// routeRisk counts a zone once per path point within its threshold.
func routeRisk(path []models.Coordinates, zones models.Zones, f models.Factors) float64 {
	var risk float64
	for _, c := range models.Categories {
		w := hazardWeights[c]
		factor := f.For(c)
		list := zones.ByCategory(c)

		for i := range list {
			for _, p := range path {
				if w.reaches(&list[i], p) {
					risk += w.route * list[i].AdjustedIntensity * factor
				}
			}
		}
	}
	return risk
}
