package pricing

import "math"

const (
	rushMultiplier          = 1.5
	shortTimelineMultiplier = 1.2
	largeTeamMultiplier     = 1.3
	mediumTeamMultiplier    = 1.1
)

// Request holds the estimator inputs for one calculation.
type Request struct {
	ServiceID     string `json:"service"`
	Complexity    int    `json:"complexity"`
	TimelineWeeks int    `json:"timeline_weeks"`
	TeamSize      int    `json:"team_size"`
}

// Result is a point estimate plus the exact factors that produced it.
type Result struct {
	Total                int64          `json:"total"`
	Service              Service        `json:"service"`
	Tier                 ComplexityTier `json:"tier"`
	ComplexityMultiplier float64        `json:"complexity_multiplier"`
	TimelineMultiplier   float64        `json:"timeline_multiplier"`
	TeamMultiplier       float64        `json:"team_multiplier"`
	ServiceMultiplier    float64        `json:"service_multiplier"`
}

// Estimate prices req against the default catalog.
func Estimate(req Request) (Result, error) {
	return defaultCatalog.Estimate(req)
}

// Estimate computes the rounded total for req. It either returns a complete result or
// one of *UnknownServiceError, *InvalidComplexityError or *InvalidInputError.
func (c *Catalog) Estimate(req Request) (Result, error) {
	service, ok := c.byID[req.ServiceID]
	if !ok {
		return Result{}, &UnknownServiceError{ServiceID: req.ServiceID}
	}
	tier, ok := c.byLevel[req.Complexity]
	if !ok {
		return Result{}, &InvalidComplexityError{Level: req.Complexity}
	}
	if req.TimelineWeeks <= 0 {
		return Result{}, &InvalidInputError{Field: "timeline_weeks", Value: req.TimelineWeeks}
	}
	if req.TeamSize <= 0 {
		return Result{}, &InvalidInputError{Field: "team_size", Value: req.TeamSize}
	}

	timeline := TimelineMultiplier(req.TimelineWeeks)
	team := TeamMultiplier(req.TeamSize)

	return Result{
		Total:                total(service.BasePrice, tier.Multiplier, timeline, team, service.Multiplier),
		Service:              service,
		Tier:                 tier,
		ComplexityMultiplier: tier.Multiplier,
		TimelineMultiplier:   timeline,
		TeamMultiplier:       team,
		ServiceMultiplier:    service.Multiplier,
	}, nil
}

// TimelineMultiplier returns the rush surcharge for a delivery window. Exactly 4 weeks
// falls in the 1.2 tier and exactly 8 weeks in the 1.0 tier.
func TimelineMultiplier(weeks int) float64 {
	switch {
	case weeks < 4:
		return rushMultiplier
	case weeks < 8:
		return shortTimelineMultiplier
	default:
		return 1.0
	}
}

// TeamMultiplier returns the staffing factor. Teams of 4 and 5 get 1.1.
func TeamMultiplier(size int) float64 {
	switch {
	case size > 5:
		return largeTeamMultiplier
	case size > 3:
		return mediumTeamMultiplier
	default:
		return 1.0
	}
}

// Recompute multiplies the breakdown back out. It equals r.Total for every result
// returned by Estimate.
func (r Result) Recompute() int64 {
	return total(r.Service.BasePrice, r.ComplexityMultiplier, r.TimelineMultiplier, r.TeamMultiplier, r.ServiceMultiplier)
}

func total(basePrice, complexity, timeline, team, service float64) int64 {
	return int64(math.Round(basePrice * complexity * timeline * team * service))
}
