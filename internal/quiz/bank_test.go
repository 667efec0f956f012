package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
)

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	require.Equal(t, 10, b.Len())
	assert.Equal(t, "v1", b.MajorVersion())

	q, ok := b.Question(0)
	require.True(t, ok)
	assert.Equal(t, KindText, q.Kind)

	for i := 1; i < b.Len(); i++ {
		q, _ := b.Question(i)
		assert.Equal(t, KindChoice, q.Kind, "question %d", i)
		assert.Len(t, q.Options, 4, "question %d", i)
		for _, o := range q.Options {
			assert.True(t, o.Category.Valid(), "question %d option %s", i, o.Key)
		}
	}

	_, ok = b.Question(10)
	assert.False(t, ok)
}

func TestBank_EveryCategoryReachable(t *testing.T) {
	seen := map[persona.Category]bool{}
	for _, q := range DefaultBank().Questions {
		for _, o := range q.Options {
			seen[o.Category] = true
		}
	}
	for _, c := range persona.AllCategories() {
		assert.True(t, seen[c], c.String())
	}
}

func TestBank_Compatible(t *testing.T) {
	b := DefaultBank()
	assert.True(t, b.Compatible("1.0.0"))
	assert.True(t, b.Compatible("v1.9.3"))
	assert.False(t, b.Compatible("2.0.0"))
	assert.False(t, b.Compatible(""))
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "version: [1"},
		{"bad version", "version: latest\nquestions:\n  - {id: 0, kind: text, prompt: x}\n"},
		{"empty", "version: 1.0.0\n"},
		{"id order", "version: 1.0.0\nquestions:\n  - {id: 1, kind: text, prompt: x}\n"},
		{"unknown kind", "version: 1.0.0\nquestions:\n  - {id: 0, kind: essay, prompt: x}\n"},
		{"bad category", "version: 1.0.0\nquestions:\n  - id: 0\n    kind: choice\n    weight: 1\n    options:\n      - {key: A, category: zen}\n      - {key: B, category: analitico}\n"},
		{"no weight", "version: 1.0.0\nquestions:\n  - id: 0\n    kind: choice\n    options:\n      - {key: A, category: criativo}\n      - {key: B, category: analitico}\n"},
		{"duplicate key", "version: 1.0.0\nquestions:\n  - id: 0\n    kind: choice\n    weight: 1\n    options:\n      - {key: A, category: criativo}\n      - {key: A, category: analitico}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
