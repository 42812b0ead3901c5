package pricing

import (
	"errors"
	"math"
	"testing"
)

func mustEstimate(t *testing.T, req Request) Result {
	t.Helper()
	result, err := Estimate(req)
	if err != nil {
		t.Fatalf("Estimate(%+v) returned error: %v", req, err)
	}
	return result
}

func TestEstimate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want int64
	}{
		{"web development standard", Request{ServiceID: "web-development", Complexity: 2, TimelineWeeks: 8, TeamSize: 3}, 6500},
		{"assistant enterprise rush large team", Request{ServiceID: "ai-business-assistant", Complexity: 4, TimelineWeeks: 2, TeamSize: 8}, 20475},
		{"marketing basic long timeline", Request{ServiceID: "digital-marketing", Complexity: 1, TimelineWeeks: 16, TeamSize: 1}, 1600},
		{"concierge at both boundaries", Request{ServiceID: "ai-concierge", Complexity: 2, TimelineWeeks: 4, TeamSize: 4}, 5148},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEstimate(t, tt.req)
			if got.Total != tt.want {
				t.Fatalf("total = %d, want %d", got.Total, tt.want)
			}
			if got.Service.ID != tt.req.ServiceID {
				t.Fatalf("service = %q, want %q", got.Service.ID, tt.req.ServiceID)
			}
		})
	}
}

func TestEstimate_UnknownService(t *testing.T) {
	_, err := Estimate(Request{ServiceID: "nonexistent-service", Complexity: 1, TimelineWeeks: 8, TeamSize: 1})

	var unknown *UnknownServiceError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownServiceError, got %v", err)
	}
	if unknown.ServiceID != "nonexistent-service" {
		t.Fatalf("ServiceID = %q", unknown.ServiceID)
	}
}

func TestEstimate_InvalidComplexity(t *testing.T) {
	for _, level := range []int{0, 5, -1} {
		_, err := Estimate(Request{ServiceID: "web-development", Complexity: level, TimelineWeeks: 8, TeamSize: 1})

		var invalid *InvalidComplexityError
		if !errors.As(err, &invalid) {
			t.Fatalf("level %d: expected InvalidComplexityError, got %v", level, err)
		}
		if invalid.Level != level {
			t.Fatalf("Level = %d, want %d", invalid.Level, level)
		}
	}
}

func TestEstimate_RejectsNonPositiveInputs(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"zero weeks", Request{ServiceID: "web-development", Complexity: 1, TimelineWeeks: 0, TeamSize: 1}, "timeline_weeks"},
		{"negative weeks", Request{ServiceID: "web-development", Complexity: 1, TimelineWeeks: -3, TeamSize: 1}, "timeline_weeks"},
		{"zero team", Request{ServiceID: "web-development", Complexity: 1, TimelineWeeks: 8, TeamSize: 0}, "team_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.req)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if invalid.Field != tt.field {
				t.Fatalf("Field = %q, want %q", invalid.Field, tt.field)
			}
		})
	}
}

func TestEstimate_AcceptsValuesBeyondSliderBounds(t *testing.T) {
	got := mustEstimate(t, Request{ServiceID: "web-development", Complexity: 1, TimelineWeeks: 52, TeamSize: 20})
	if got.TimelineMultiplier != 1.0 || got.TeamMultiplier != 1.3 {
		t.Fatalf("unexpected multipliers: %+v", got)
	}
	if got.Total != 6500 {
		t.Fatalf("total = %d, want 6500", got.Total)
	}
}

func TestTimelineMultiplier_Boundaries(t *testing.T) {
	tests := []struct {
		weeks int
		want  float64
	}{
		{1, 1.5},
		{2, 1.5},
		{3, 1.5},
		{4, 1.2},
		{7, 1.2},
		{8, 1.0},
		{16, 1.0},
	}
	for _, tt := range tests {
		if got := TimelineMultiplier(tt.weeks); got != tt.want {
			t.Errorf("TimelineMultiplier(%d) = %v, want %v", tt.weeks, got, tt.want)
		}
	}
}

func TestTeamMultiplier_Boundaries(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{1, 1.0},
		{3, 1.0},
		{4, 1.1},
		{5, 1.1},
		{6, 1.3},
		{8, 1.3},
	}
	for _, tt := range tests {
		if got := TeamMultiplier(tt.size); got != tt.want {
			t.Errorf("TeamMultiplier(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestEstimate_BreakdownMatchesTotal(t *testing.T) {
	catalog := DefaultCatalog()
	b := SliderBounds
	for _, s := range catalog.Services() {
		for c := b.Complexity.Min; c <= b.Complexity.Max; c++ {
			for w := b.TimelineWeeks.Min; w <= b.TimelineWeeks.Max; w++ {
				for team := b.TeamSize.Min; team <= b.TeamSize.Max; team++ {
					req := Request{ServiceID: s.ID, Complexity: c, TimelineWeeks: w, TeamSize: team}
					got := mustEstimate(t, req)

					product := s.BasePrice * got.ComplexityMultiplier * got.TimelineMultiplier * got.TeamMultiplier * got.ServiceMultiplier
					if want := int64(math.Round(product)); got.Total != want {
						t.Fatalf("%+v: total = %d, breakdown gives %d", req, got.Total, want)
					}
					if got.Recompute() != got.Total {
						t.Fatalf("%+v: Recompute = %d, total %d", req, got.Recompute(), got.Total)
					}
					if got.ServiceMultiplier != s.Multiplier {
						t.Fatalf("%+v: service multiplier = %v, want %v", req, got.ServiceMultiplier, s.Multiplier)
					}

					again := mustEstimate(t, req)
					if again != got {
						t.Fatalf("%+v: repeated call differs: %+v vs %+v", req, again, got)
					}
				}
			}
		}
	}
}

func TestEstimate_Monotonic(t *testing.T) {
	base := Request{ServiceID: "ai-integration", Complexity: 2, TimelineWeeks: 8, TeamSize: 3}

	prev := int64(0)
	for c := 1; c <= 4; c++ {
		req := base
		req.Complexity = c
		got := mustEstimate(t, req).Total
		if got < prev {
			t.Fatalf("complexity %d decreased total: %d < %d", c, got, prev)
		}
		prev = got
	}

	prev = 0
	for w := 8; w >= 1; w-- {
		req := base
		req.TimelineWeeks = w
		got := mustEstimate(t, req).Total
		if got < prev {
			t.Fatalf("timeline %d decreased total: %d < %d", w, got, prev)
		}
		prev = got
	}

	prev = 0
	for team := 3; team <= 8; team++ {
		req := base
		req.TeamSize = team
		got := mustEstimate(t, req).Total
		if got < prev {
			t.Fatalf("team %d decreased total: %d < %d", team, got, prev)
		}
		prev = got
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	tiers := []ComplexityTier{{Level: 1, Label: "Basic", Multiplier: 1}}

	tests := []struct {
		name     string
		services []Service
		tiers    []ComplexityTier
	}{
		{"missing id", []Service{{BasePrice: 1, Multiplier: 1}}, tiers},
		{"duplicate id", []Service{{ID: "a", BasePrice: 1, Multiplier: 1}, {ID: "a", BasePrice: 2, Multiplier: 1}}, tiers},
		{"zero price", []Service{{ID: "a", BasePrice: 0, Multiplier: 1}}, tiers},
		{"negative multiplier", []Service{{ID: "a", BasePrice: 1, Multiplier: -1}}, tiers},
		{"duplicate level", []Service{{ID: "a", BasePrice: 1, Multiplier: 1}}, append(tiers, ComplexityTier{Level: 1, Multiplier: 2})},
		{"zero tier multiplier", []Service{{ID: "a", BasePrice: 1, Multiplier: 1}}, []ComplexityTier{{Level: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.services, tt.tiers); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestCatalog_CustomTablesExtendWithoutCodeChanges(t *testing.T) {
	catalog, err := NewCatalog(
		[]Service{{ID: "seo-audit", Name: "SEO Audit", BasePrice: 1000, Multiplier: 0.4}},
		[]ComplexityTier{{Level: 2, Label: "Standard", Multiplier: 1.3}, {Level: 1, Label: "Basic", Multiplier: 1}},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	got, err := catalog.Estimate(Request{ServiceID: "seo-audit", Complexity: 2, TimelineWeeks: 3, TeamSize: 6})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	// 1000 × 1.3 × 1.5 × 1.3 × 0.4
	if got.Total != 1014 {
		t.Fatalf("total = %d, want 1014", got.Total)
	}

	if tiers := catalog.Tiers(); tiers[0].Level != 1 || tiers[1].Level != 2 {
		t.Fatalf("tiers not ordered by level: %+v", tiers)
	}
	if _, err := catalog.Estimate(Request{ServiceID: "web-development", Complexity: 1, TimelineWeeks: 8, TeamSize: 1}); err == nil {
		t.Fatalf("expected custom catalog to reject default services")
	}
}

func TestDefaultCatalog_IsNotMutatedByCallers(t *testing.T) {
	services := DefaultCatalog().Services()
	services[0].BasePrice = 1

	s, ok := DefaultCatalog().Service(services[0].ID)
	if !ok || s.BasePrice == 1 {
		t.Fatalf("catalog was mutated through Services(): %+v", s)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		total int64
		want  string
	}{
		{0, "$0"},
		{950, "$950"},
		{6500, "$6,500"},
		{20475, "$20,475"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.total); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}
