package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madboat/madboat/internal/batch"
	"github.com/madboat/madboat/internal/refine"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Classify recorded answer sets in parallel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := batch.Load(args[0])
		if err != nil {
			return err
		}

		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		workers, _ := cmd.Flags().GetInt("workers")
		if !cmd.Flags().Changed("workers") {
			workers = e.cfg.BatchWorkers
		}
		r := &batch.Runner{
			Classifier: e.classifier(),
			Workers:    workers,
			Logger:     e.logger.Named("batch"),
		}
		if record, _ := cmd.Flags().GetBool("record"); record {
			r.Recorder = e.store.EventRepo()
		}
		if second, _ := cmd.Flags().GetBool("second-opinion"); second {
			svc := e.refineService(cmd.Context())
			defer svc.Close()
			r.Refine = svc
		}

		outcomes, err := r.Run(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(jsonOutcomes(outcomes))
		}

		fmt.Fprintf(out, "%-36s  %-13s  %5s  %4s  %-10s\n", "Sessão", "Persona", "Conf", "Resp", "Estado")
		fmt.Fprintln(out, strings.Repeat("─", 78))
		failed := 0
		for _, o := range outcomes {
			if o.Err != nil {
				failed++
				fmt.Fprintf(out, "%-36s  erro: %v\n", o.SessionID, o.Err)
				continue
			}
			fmt.Fprintf(out, "%-36s  %-13s  %4.0f%%  %4d  %-10s\n",
				o.SessionID, o.Result.Type.Label(), o.Result.Confidence, o.Result.Answered, o.Result.Reason)
			for _, op := range o.Opinions {
				fmt.Fprintf(out, "%-36s  ↳ segunda opinião: %s (%.0f%%)\n", "", op.Category.Label(), op.Confidence)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d sessions failed", failed, len(outcomes))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 4, "Parallel workers (default MADBOAT_BATCH_WORKERS)")
	batchCmd.Flags().Bool("record", false, "Store final results in the history")
	batchCmd.Flags().Bool("second-opinion", false, "Ask the configured LLM about weak free-text answers")
	batchCmd.Flags().Bool("json", false, "Print JSON")
}

type outcomeJSON struct {
	SessionID string            `json:"session_id"`
	Result    any               `json:"result,omitempty"`
	Opinions  []*refine.Opinion `json:"second_opinions,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func jsonOutcomes(outcomes []batch.Outcome) []outcomeJSON {
	out := make([]outcomeJSON, len(outcomes))
	for i, o := range outcomes {
		out[i] = outcomeJSON{SessionID: o.SessionID, Opinions: o.Opinions}
		if o.Err != nil {
			out[i].Error = o.Err.Error()
		} else {
			out[i].Result = o.Result
		}
	}
	return out
}
