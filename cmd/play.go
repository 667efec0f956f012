package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madboat/madboat/internal/app"
	quizscreen "github.com/madboat/madboat/internal/screens/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the persona quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")
		return runPlay(cmd, resume)
	},
}

func init() {
	playCmd.Flags().Bool("resume", false, "Continue the latest unfinished quiz")
}

func runPlay(cmd *cobra.Command, resume bool) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	svc := e.refineService(cmd.Context())
	defer svc.Close()

	deps := quizscreen.Deps{
		Classifier: e.classifier(),
		Events:     e.store.EventRepo(),
		Snapshots:  e.store.SnapshotRepo(),
		Refine:     svc,
		Logger:     e.logger,
	}
	err = app.Run(deps, resume)
	if errors.Is(err, app.ErrNothingToResume) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nenhum questionário em andamento. Use `madboat play` para começar.")
		return nil
	}
	return err
}
