package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/madboat/madboat/internal/persona"
)

//go:embed questions.yaml
var questionsYAML []byte

// Kind distinguishes free-text from multiple-choice questions.
type Kind string

const (
	KindText   Kind = "text"
	KindChoice Kind = "choice"
)

// Option is one multiple-choice answer, pre-tagged with the category it
// signals.
type Option struct {
	Key      string           `yaml:"key" json:"key"`
	Text     string           `yaml:"text" json:"text"`
	Category persona.Category `yaml:"category" json:"category"`
}

// Question is one entry of the bank.
type Question struct {
	ID          int      `yaml:"id" json:"id"`
	Kind        Kind     `yaml:"kind" json:"kind"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Weight      float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Options     []Option `yaml:"options,omitempty" json:"options,omitempty"`
}

// Option looks up a choice by its key, case-insensitively.
func (q Question) Option(key string) (Option, bool) {
	key = strings.ToUpper(strings.TrimSpace(key))
	for _, o := range q.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Bank is an ordered, versioned question set.
type Bank struct {
	Version   string     `yaml:"version" json:"version"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.Questions) }

// Question returns the question at index i.
func (b *Bank) Question(i int) (Question, bool) {
	if i < 0 || i >= len(b.Questions) {
		return Question{}, false
	}
	return b.Questions[i], true
}

// MajorVersion returns the semver major component, e.g. "v1".
func (b *Bank) MajorVersion() string {
	return semver.Major(canonical(b.Version))
}

// Compatible reports whether a result recorded against version v can be
// compared with results from this bank.
func (b *Bank) Compatible(v string) bool {
	return semver.Major(canonical(v)) == b.MajorVersion()
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// ParseBank decodes and validates a question bank.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bank) validate() error {
	if !semver.IsValid(canonical(b.Version)) {
		return fmt.Errorf("question bank version %q is not semver", b.Version)
	}
	if len(b.Questions) == 0 {
		return errors.New("question bank is empty")
	}
	for i, q := range b.Questions {
		if q.ID != i {
			return fmt.Errorf("question %d: id %d out of order", i, q.ID)
		}
		switch q.Kind {
		case KindText:
		case KindChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("question %d: needs at least two options", i)
			}
			if q.Weight <= 0 {
				return fmt.Errorf("question %d: weight must be positive", i)
			}
			seen := map[string]bool{}
			for _, o := range q.Options {
				if seen[o.Key] {
					return fmt.Errorf("question %d: duplicate option %q", i, o.Key)
				}
				seen[o.Key] = true
			}
		default:
			return fmt.Errorf("question %d: unknown kind %q", i, q.Kind)
		}
	}
	return nil
}

// DefaultBank returns the embedded question bank. It panics if the embedded
// file is invalid, which is a build defect.
func DefaultBank() *Bank {
	b, err := ParseBank(questionsYAML)
	if err != nil {
		panic(fmt.Sprintf("load questions.yaml: %v", err))
	}
	return b
}
