// Package refine asks a language model for a second opinion on free-text
// answers the rule scorer is unsure about. Opinions are advisory: they are
// recorded and shown, never folded into the classification.
package refine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
)

// Purpose labels recorded LLM requests made by this package.
const Purpose = "persona-refine"

// ErrUnknownCategory is returned when the model names a category outside
// the persona set.
var ErrUnknownCategory = errors.New("model returned an unknown category")

// Config tunes the model request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{MaxTokens: 300, Temperature: 0.2}
}

// Opinion is the model's reading of one answer.
type Opinion struct {
	Category   persona.Category `json:"category"`
	Confidence float64          `json:"confidence"` // 0..100
	Reasoning  string           `json:"reasoning"`
	Model      string           `json:"model"`
}

// Refiner performs one model call per answer.
type Refiner struct {
	provider llm.Provider
	cfg      Config
}

func NewRefiner(provider llm.Provider, cfg Config) *Refiner {
	return &Refiner{provider: provider, cfg: cfg}
}

type opinionOutput struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Opine asks the model to classify text. rule is the scorer's reading and
// is included in the prompt as context.
func (r *Refiner) Opine(ctx context.Context, text string, rule *persona.Analysis) (*Opinion, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	msg, err := buildPrompt(text, rule)
	if err != nil {
		return nil, fmt.Errorf("build refine prompt: %w", err)
	}
	req := llm.UserPrompt(systemPrompt, msg)
	req.Schema = OpinionSchema
	req.MaxTokens = r.cfg.MaxTokens
	req.Temperature = r.cfg.Temperature

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("refine: %w", err)
	}

	var out opinionOutput
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	cat, err := persona.ParseCategory(strings.ToLower(strings.TrimSpace(out.Category)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, out.Category)
	}
	return &Opinion{
		Category:   cat,
		Confidence: min(max(out.Confidence, 0), persona.MaxConfidence),
		Reasoning:  out.Reasoning,
		Model:      resp.Model,
	}, nil
}

const systemPrompt = `Você classifica respostas abertas de um questionário comportamental em um de seis perfis:
analitico (dados, lógica, estrutura), pragmatico (ação rápida, resultado), criativo (ideias novas, imaginação),
colaborativo (pessoas, equipe, consenso), visionario (futuro, propósito, transformação), hesitante (dúvida, insegurança).

Regras:
- Escolha exatamente um perfil, usando a chave em minúsculas sem acento.
- confidence vai de 0 a 100 e reflete o quanto o texto sustenta o perfil.
- reasoning tem uma frase curta em português.`

var userTemplate = template.Must(template.New("refine").Parse(`Resposta:
"""
{{.Text}}
"""
{{if .Rule}}
Leitura por regras: {{.Rule.Type}} (confiança {{printf "%.0f" .Rule.Confidence}})
{{- range .Rule.Indicators}}
- {{.}}
{{- end}}
{{end}}`))

func buildPrompt(text string, rule *persona.Analysis) (string, error) {
	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, struct {
		Text string
		Rule *persona.Analysis
	}{text, rule})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
