package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		repo := e.store.EventRepo()
		out := cmd.OutOrStdout()

		if id, _ := cmd.Flags().GetString("session"); id != "" {
			responses, err := repo.SessionResponses(ctx, id)
			if err != nil {
				return fmt.Errorf("query responses: %w", err)
			}
			if len(responses) == 0 {
				return fmt.Errorf("session %s not found", id)
			}
			for _, r := range responses {
				fmt.Fprintf(out, "%2d. Q%-2d %-40s → %s (%.0f%%)\n",
					r.Position+1, r.QuestionID+1, truncate(r.Answer, 40), r.LeadingPersona, r.LeadingConfidence)
				if r.TextPersona != "" {
					fmt.Fprintf(out, "       texto: %s (%.0f%%) · %.0f cpm · %d pausas · %d correções · %d colagens\n",
						r.TextPersona, r.TextConfidence, r.TypingCPM, r.Pauses, r.Backspaces, r.Pastes)
				}
			}
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		results, err := repo.RecentResults(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "Nenhum resultado registrado.")
			return nil
		}

		bank := quiz.DefaultBank()
		fmt.Fprintf(out, "%-36s  %-16s  %-13s  %5s  %4s  %-10s  %s\n",
			"Sessão", "Data", "Persona", "Conf", "Resp", "Motivo", "Duração")
		fmt.Fprintln(out, strings.Repeat("─", 106))
		for _, r := range results {
			label := r.Persona
			if c, err := persona.ParseCategory(r.Persona); err == nil {
				label = c.Label()
			}
			line := fmt.Sprintf("%-36s  %-16s  %-13s  %4.0f%%  %4d  %-10s  %s",
				r.SessionID, r.FinishedAt.Local().Format("2006-01-02 15:04"), label,
				r.Confidence, r.Answered, r.Reason, r.Duration().Round(time.Second))
			if !bank.Compatible(r.BankVersion) {
				line += fmt.Sprintf("  [banco %s]", r.BankVersion)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	historyCmd.Flags().StringP("session", "s", "", "Show the answers of one session")
}
