package pricing

import (
	"fmt"
	"sort"
)

// Service is a purchasable offering with its base price and service-specific multiplier.
type Service struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"base_price"`
	Multiplier float64 `json:"multiplier"`
}

// ComplexityTier scales a price by project difficulty.
type ComplexityTier struct {
	Level      int     `json:"level"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Bounds is the inclusive range offered by an input control.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SliderBounds are the ranges the estimator UI offers. Estimate itself accepts any
// positive timeline or team size.
var SliderBounds = struct {
	Complexity    Bounds
	TimelineWeeks Bounds
	TeamSize      Bounds
}{
	Complexity:    Bounds{Min: 1, Max: 4},
	TimelineWeeks: Bounds{Min: 2, Max: 16},
	TeamSize:      Bounds{Min: 1, Max: 8},
}

var defaultServices = []Service{
	{ID: "ai-concierge", Name: "AI Concierge", BasePrice: 2500, Multiplier: 1.2},
	{ID: "ai-business-assistant", Name: "AI Business Assistant", BasePrice: 3500, Multiplier: 1.5},
	{ID: "web-development", Name: "Web Development", BasePrice: 5000, Multiplier: 1.0},
	{ID: "digital-marketing", Name: "Digital Marketing", BasePrice: 2000, Multiplier: 0.8},
	{ID: "ai-integration", Name: "AI Integration", BasePrice: 4000, Multiplier: 1.3},
}

var defaultTiers = []ComplexityTier{
	{Level: 1, Label: "Basic", Multiplier: 1.0},
	{Level: 2, Label: "Standard", Multiplier: 1.3},
	{Level: 3, Label: "Advanced", Multiplier: 1.6},
	{Level: 4, Label: "Enterprise", Multiplier: 2.0},
}

// Catalog holds the service and complexity lookup tables. A Catalog is never mutated
// after construction and is safe for concurrent use.
type Catalog struct {
	services []Service
	byID     map[string]Service
	tiers    []ComplexityTier
	byLevel  map[int]ComplexityTier
}

var defaultCatalog = mustCatalog(defaultServices, defaultTiers)

// DefaultCatalog returns the published service catalog and complexity tiers.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from the given tables.
func NewCatalog(services []Service, tiers []ComplexityTier) (*Catalog, error) {
	c := &Catalog{
		services: make([]Service, 0, len(services)),
		byID:     make(map[string]Service, len(services)),
		tiers:    make([]ComplexityTier, 0, len(tiers)),
		byLevel:  make(map[int]ComplexityTier, len(tiers)),
	}

	for _, s := range services {
		if s.ID == "" {
			return nil, fmt.Errorf("service id is required")
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate service %q", s.ID)
		}
		if s.BasePrice <= 0 {
			return nil, fmt.Errorf("service %q: base price must be positive", s.ID)
		}
		if s.Multiplier <= 0 {
			return nil, fmt.Errorf("service %q: multiplier must be positive", s.ID)
		}
		c.byID[s.ID] = s
		c.services = append(c.services, s)
	}

	for _, t := range tiers {
		if _, dup := c.byLevel[t.Level]; dup {
			return nil, fmt.Errorf("duplicate complexity level %d", t.Level)
		}
		if t.Multiplier <= 0 {
			return nil, fmt.Errorf("complexity level %d: multiplier must be positive", t.Level)
		}
		c.byLevel[t.Level] = t
		c.tiers = append(c.tiers, t)
	}
	sort.Slice(c.tiers, func(i, j int) bool { return c.tiers[i].Level < c.tiers[j].Level })

	return c, nil
}

func mustCatalog(services []Service, tiers []ComplexityTier) *Catalog {
	c, err := NewCatalog(services, tiers)
	if err != nil {
		panic(err)
	}
	return c
}

// Services returns the offerings in catalog order.
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Tiers returns the complexity tiers ordered by level.
func (c *Catalog) Tiers() []ComplexityTier {
	out := make([]ComplexityTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Service looks up an offering by identifier.
func (c *Catalog) Service(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Tier looks up a complexity tier by level.
func (c *Catalog) Tier(level int) (ComplexityTier, bool) {
	t, ok := c.byLevel[level]
	return t, ok
}
