package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/typing"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Score a free-text answer",
	Long: "Score a free-text answer against the persona rules. The text is read from\n" +
		"the arguments or, when none are given, from stdin. Typing behaviour can be\n" +
		"simulated with --cpm, --pauses, --backspaces and --hesitations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(b)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no text to analyze")
		}

		metrics := simulatedMetrics(cmd, text)
		a := persona.Analyze(text, metrics)
		aux := persona.AuxiliaryScores(text)

		var opinion *refine.Opinion
		if second, _ := cmd.Flags().GetBool("second-opinion"); second {
			e, err := setup(cmd, true)
			if err != nil {
				return err
			}
			defer e.Close()
			svc := e.refineService(cmd.Context())
			defer svc.Close()

			opinion, err = svc.Refine(cmd.Context(), refine.Request{Text: text, Rule: a})
			if err != nil {
				return fmt.Errorf("second opinion: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				*persona.Analysis
				Auxiliary     persona.Auxiliary `json:"auxiliary"`
				SecondOpinion *refine.Opinion   `json:"second_opinion,omitempty"`
			}{a, aux, opinion})
		}
		printAnalysis(out, a, aux, opinion)
		return nil
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.Float64("cpm", 0, "Simulated typing speed in characters per minute")
	f.Int("pauses", 0, "Simulated pause count")
	f.Int("backspaces", 0, "Simulated backspace count")
	f.Int("hesitations", 0, "Simulated long-hesitation count")
	f.Bool("second-opinion", false, "Also ask the configured LLM")
	f.Bool("json", false, "Print JSON")
}

// simulatedMetrics returns nil unless a typing flag was set.
func simulatedMetrics(cmd *cobra.Command, text string) *typing.TypingMetrics {
	f := cmd.Flags()
	if !f.Changed("cpm") && !f.Changed("pauses") && !f.Changed("backspaces") && !f.Changed("hesitations") {
		return nil
	}
	cpm, _ := f.GetFloat64("cpm")
	pauses, _ := f.GetInt("pauses")
	backspaces, _ := f.GetInt("backspaces")
	hesitations, _ := f.GetInt("hesitations")

	chars := len([]rune(text))
	m := &typing.TypingMetrics{
		CharacterCount:     chars,
		AverageTypingSpeed: cpm,
		PauseCount:         pauses,
		HesitationCount:    hesitations,
		BackspaceCount:     backspaces,
	}
	if cpm > 0 {
		m.TotalTimeMs = int64(float64(chars) / cpm * 60000)
	}
	for range backspaces {
		m.Corrections = append(m.Corrections, typing.Event{Kind: typing.EventCorrection})
	}
	return m
}

func printAnalysis(w io.Writer, a *persona.Analysis, aux persona.Auxiliary, op *refine.Opinion) {
	fmt.Fprintf(w, "Persona:     %s (%.0f%%)\n", a.Type.Label(), a.Confidence)
	fmt.Fprintf(w, "Semântica:   %.1f\n", a.SemanticScore)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pontuação")
	fmt.Fprintln(w, strings.Repeat("─", 32))
	for _, c := range persona.AllCategories() {
		fmt.Fprintf(w, "%-14s %6.1f\n", c.Label(), a.Scores.Get(c))
	}

	if len(a.Indicators) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Indicadores")
		for _, ind := range a.Indicators {
			fmt.Fprintf(w, "  • %s\n", ind)
		}
	}
	if len(a.BehavioralPatterns) > 0 {
		fmt.Fprintf(w, "\nPadrões:     %s\n", strings.Join(a.BehavioralPatterns, ", "))
	}

	fmt.Fprintf(w, "\nIntensidade emocional %d/10 · profundidade analítica %d/10 · criatividade %d/10\n",
		aux.EmotionalIntensity, aux.AnalyticalDepth, aux.CreativityMarkers)

	if op != nil {
		fmt.Fprintf(w, "\nSegunda opinião (%s): %s (%.0f%%)\n  %s\n",
			op.Model, op.Category.Label(), op.Confidence, op.Reasoning)
	}
}
