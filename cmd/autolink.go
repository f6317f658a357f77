package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/traininglab/exlink/internal/service"
)

var autolinkCmd = &cobra.Command{
	Use:   "autolink",
	Short: "template auto-linking commands",
}

func attachAutoLinksCmd() *cobra.Command {
	var templateID string
	var exerciseID string

	var required = []string{"template-id", "exercise-id"}

	command := &cobra.Command{
		Use:     "attach",
		Short:   "attach the warmups and cooldowns implied by a template exercise",
		Example: "exlink autolink attach -w <template-id> -e <exercise-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			autolink := service.NewAutoLinkService(st, st)
			created, err := autolink.AddAutoLinkedExercises(context.Background(), templateID, exerciseID)
			if err != nil {
				logrus.Error(err)
				return
			}

			if len(created) == 0 {
				logrus.Infof("nothing to attach")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Exercise", "Zone", "Order"})
			for _, entry := range created {
				table.Append([]string{entry.ID, entry.ExerciseID, string(entry.Zone), strconv.Itoa(entry.SequenceOrder)})
			}

			table.Render()
		},
	}

	command.Flags().StringVarP(&templateID, "template-id", "w", "", "workout template id (required)")
	command.Flags().StringVarP(&exerciseID, "exercise-id", "e", "", "exercise id just added to the Main zone (required)")

	command.Flags().SortFlags = false

	return command
}

func listOrphansCmd() *cobra.Command {
	var templateID string
	var exerciseID string
	var remove bool

	var required = []string{"template-id", "exercise-id"}

	command := &cobra.Command{
		Use:     "orphans",
		Short:   "list the entries orphaned by removing a template exercise",
		Example: "exlink autolink orphans -w <template-id> -e <exercise-id> --remove",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			ctx := context.Background()
			autolink := service.NewAutoLinkService(st, st)
			orphaned, err := autolink.FindOrphanedExercises(ctx, templateID, exerciseID)
			if err != nil {
				logrus.Error(err)
				return
			}

			if len(orphaned) == 0 {
				logrus.Infof("no orphaned entries")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Exercise", "Zone", "Order"})
			for _, entry := range orphaned {
				table.Append([]string{entry.ID, entry.ExerciseID, string(entry.Zone), strconv.Itoa(entry.SequenceOrder)})
			}

			table.Render()

			if remove {
				for _, entry := range orphaned {
					if err := st.DeleteTemplateExercise(ctx, entry.ID); err != nil {
						logrus.Error(err)
						return
					}
				}
				color.Green("removed %d orphaned entries", len(orphaned))
			}
		},
	}

	command.Flags().StringVarP(&templateID, "template-id", "w", "", "workout template id (required)")
	command.Flags().StringVarP(&exerciseID, "exercise-id", "e", "", "exercise id about to be removed from the Main zone (required)")
	command.Flags().BoolVarP(&remove, "remove", "r", false, "delete the orphaned entries")

	command.Flags().SortFlags = false

	return command
}
