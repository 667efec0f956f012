package persona

import (
	"encoding/json"
	"fmt"
)

// Category is a behavioural persona label. The declaration order is the
// tie-break order: when two categories share the top score, the one with the
// lower ordinal wins.
type Category int

const (
	Analitico Category = iota
	Pragmatico
	Criativo
	Colaborativo
	Visionario
	Hesitante

	numCategories
)

var categoryKeys = [numCategories]string{
	Analitico:    "analitico",
	Pragmatico:   "pragmatico",
	Criativo:     "criativo",
	Colaborativo: "colaborativo",
	Visionario:   "visionario",
	Hesitante:    "hesitante",
}

var categoryLabels = [numCategories]string{
	Analitico:    "Analítico",
	Pragmatico:   "Pragmático",
	Criativo:     "Criativo",
	Colaborativo: "Colaborativo",
	Visionario:   "Visionário",
	Hesitante:    "Hesitante",
}

// AllCategories returns every category in ordinal order.
func AllCategories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// String returns the stable machine key, e.g. "pragmatico".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

// Label returns the display name.
func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryLabels[c]
}

// ParseCategory maps a machine key back to a Category.
func ParseCategory(s string) (Category, error) {
	for i, k := range categoryKeys {
		if k == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown persona category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid persona category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scores holds one accumulated score per category. Contributions are only
// ever added, never subtracted.
type Scores [numCategories]float64

// Add credits v to category c. Non-positive values are ignored.
func (s *Scores) Add(c Category, v float64) {
	if !c.Valid() || v <= 0 {
		return
	}
	s[c] += v
}

// Merge adds every category score of other into s.
func (s *Scores) Merge(other Scores) {
	for i, v := range other {
		s.Add(Category(i), v)
	}
}

// Get returns the score of c.
func (s Scores) Get(c Category) float64 {
	if !c.Valid() {
		return 0
	}
	return s[c]
}

// Top returns the leading category, its score and the runner-up score.
// Ties go to the lowest ordinal.
func (s Scores) Top() (Category, float64, float64) {
	best := Category(0)
	bestScore := s[0]
	second := 0.0
	for i := 1; i < len(s); i++ {
		v := s[i]
		if v > bestScore {
			second = bestScore
			best = Category(i)
			bestScore = v
		} else if v > second {
			second = v
		}
	}
	return best, bestScore, second
}

// IsZero reports whether no category has any score.
func (s Scores) IsZero() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// MarshalJSON encodes scores as an object keyed by category.
func (s Scores) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, len(s))
	for i, v := range s {
		m[categoryKeys[i]] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by category. Unknown keys are an error.
func (s *Scores) UnmarshalJSON(b []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out Scores
	for k, v := range m {
		c, err := ParseCategory(k)
		if err != nil {
			return err
		}
		out[c] = v
	}
	*s = out
	return nil
}
