package refine

import (
	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
)

// OpinionSchema constrains the model output to one known category.
var OpinionSchema = &llm.Schema{
	Name:        "persona-opinion",
	Description: "Persona category for a free-text questionnaire answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": categoryKeys(),
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0.0,
				"maximum": 100.0,
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One short sentence in Portuguese",
			},
		},
		"required":             []any{"category", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

func categoryKeys() []any {
	var keys []any
	for _, c := range persona.AllCategories() {
		keys = append(keys, c.String())
	}
	return keys
}
