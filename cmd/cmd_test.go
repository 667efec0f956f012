package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/store"
)

// resetFlags undoes flag values left over from a previous Execute on the
// shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "", "analyze", "--json", "--cpm", "300",
		"Vamos", "agir", "agora", "e", "entregar", "o", "resultado")
	require.NoError(t, err)

	var got struct {
		Type      string         `json:"type"`
		Patterns  []string       `json:"behavioral_patterns"`
		Auxiliary map[string]int `json:"auxiliary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pragmatico", got.Type)
	assert.Contains(t, got.Patterns, "digitacao-rapida")
	assert.Contains(t, got.Auxiliary, "analytical_depth")
}

func TestAnalyzeStdin(t *testing.T) {
	out, err := execute(t, "Primeiro analiso os dados, depois comparo.", "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Analítico")
	assert.Contains(t, out, "Pontuação")
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := execute(t, "   ", "analyze")
	assert.Error(t, err)
}

func TestBatchAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "madboat.db")
	file := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
sessions:
  - id: cli-1
    responses:
      - {question_id: 0, answer: "quero criar algo original e diferente"}
      - {question_id: 2, answer: A}
`), 0o600))

	out, err := execute(t, "", "batch", "--db", db, "--record", file)
	require.NoError(t, err)
	assert.Contains(t, out, "cli-1")
	assert.Contains(t, out, "Criativo")

	out, err = execute(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "cli-1")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf,
		[]store.LLMUsageStats{{Purpose: "persona-refine", Calls: 2, InputTokens: 1000, OutputTokens: 200, AvgLatencyMs: 300}},
		[]store.LLMModelUsage{
			{Model: "claude-haiku-4-5-20251001", Calls: 1, InputTokens: 500, OutputTokens: 100},
			{Model: "home-made", Calls: 1, InputTokens: 500, OutputTokens: 100},
		})
	out := buf.String()
	assert.Contains(t, out, "persona-refine")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: home-made")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ação", truncate("ação", 4))
	assert.Equal(t, "aç", truncate("ação", 2))
}
