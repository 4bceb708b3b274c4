package cell

import (
	"fmt"
	"sort"
	"strings"
)

// Cell describes one gate in a technology library.
type Cell struct {
	Name     string  `json:"name" yaml:"name"`
	Area     float64 `json:"area" yaml:"area"`
	Power    float64 `json:"power" yaml:"power"`
	Timing   float64 `json:"timing" yaml:"timing"`
	Searcher string  `json:"searcher" yaml:"searcher"`
	Applier  string  `json:"applier" yaml:"applier"`
}

// Library is a set of cells keyed by name.
type Library map[string]Cell

// Names returns the cell names in sorted order for deterministic iteration.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Metric selects which cell cost the extractor minimizes.
type Metric uint8

const (
	MetricArea Metric = iota
	MetricPower
	MetricTiming
)

// ParseMetric parses a metric name. Matching is case-insensitive.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "area":
		return MetricArea, nil
	case "power":
		return MetricPower, nil
	case "timing":
		return MetricTiming, nil
	default:
		return 0, fmt.Errorf("unknown metric %q: must be one of Area, Power, Timing", s)
	}
}

// String returns the canonical metric name.
func (m Metric) String() string {
	switch m {
	case MetricArea:
		return "Area"
	case MetricPower:
		return "Power"
	case MetricTiming:
		return "Timing"
	default:
		return fmt.Sprintf("Metric(%d)", uint8(m))
	}
}

// Cost returns the cell's cost under the metric.
func (m Metric) Cost(c Cell) float64 {
	switch m {
	case MetricPower:
		return c.Power
	case MetricTiming:
		return c.Timing
	default:
		return c.Area
	}
}

// Rule is a searcher/applier pattern pair the engine turns into a rewrite.
type Rule struct {
	Name     string `json:"name"`
	Searcher string `json:"searcher"`
	Applier  string `json:"applier"`
}

// Rules returns the library's rewrite rules in sorted name order.
func Rules(lib Library) []Rule {
	rules := make([]Rule, 0, len(lib))
	for _, name := range lib.Names() {
		c := lib[name]
		rules = append(rules, Rule{Name: c.Name, Searcher: c.Searcher, Applier: c.Applier})
	}
	return rules
}
