package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/service"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "link commands",
}

func addLinkCmd() *cobra.Command {
	var sourceID string
	var targetID string
	var linkType string

	var required = []string{"source-id", "target-id", "link-type"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "link two exercises",
		Long:    `create a typed link between two exercises together with its reverse link`,
		Example: "exlink link add -s <source-id> -t <target-id> -l warmup",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			parsed, ok := model.ParseLinkType(linkType)
			if !ok {
				color.Red("invalid link type: %s, expected warmup, cooldown or alternative", linkType)
				return
			}

			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			ctx := context.Background()
			circular := service.NewCircularReferenceValidator(st)
			validator := service.NewLinkValidator(st, circular)
			links := service.NewLinkService(st, linkCache(), linkQueue())

			if err := validator.ValidateCreate(ctx, sourceID, targetID, parsed); err != nil {
				color.Red("%v", err)
				return
			}

			primary, reverse, err := links.CreateBidirectionalLink(ctx, sourceID, targetID, parsed)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("link created: %s", primary.ID)
			if reverse != nil {
				color.Green("reverse link created: %s", reverse.ID)
			}
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source exercise id (required)")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target exercise id (required)")
	command.Flags().StringVarP(&linkType, "link-type", "l", "", "link type: warmup, cooldown, alternative (required)")

	command.Flags().SortFlags = false

	return command
}

func removeLinkCmd() *cobra.Command {
	var linkID string
	var keepReverse bool

	var required = []string{"link-id"}

	command := &cobra.Command{
		Use:     "remove",
		Short:   "remove a link",
		Long:    `remove a link and, unless told otherwise, its reverse link`,
		Example: "exlink link remove -i <link-id> --keep-reverse",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			links := service.NewLinkService(st, linkCache(), linkQueue())
			err = links.DeleteBidirectionalLink(context.Background(), linkID, !keepReverse)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("link removed")
		},
	}

	command.Flags().StringVarP(&linkID, "link-id", "i", "", "link id (required)")
	command.Flags().BoolVarP(&keepReverse, "keep-reverse", "k", false, "keep the reverse link")

	command.Flags().SortFlags = false

	return command
}

func listLinksCmd() *cobra.Command {
	var exerciseID string
	var linkType string

	var required = []string{"exercise-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the links of an exercise",
		Example: "exlink link list -e <exercise-id> -l warmup",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var types []model.LinkType
			if linkType != "" {
				parsed, ok := model.ParseLinkType(linkType)
				if !ok {
					color.Red("invalid link type: %s", linkType)
					return
				}
				types = append(types, parsed)
			}

			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			links := service.NewLinkService(st, linkCache(), linkQueue())
			res, err := links.ListLinks(context.Background(), exerciseID, types...)
			if err != nil {
				logrus.Error(err)
				return
			}

			if len(res) == 0 {
				logrus.Infof("no links found")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Target", "Type", "Order"})
			for _, link := range res {
				table.Append([]string{link.ID, link.TargetExerciseID, link.LinkType.String(), strconv.Itoa(link.DisplayOrder)})
			}

			table.Render()
		},
	}

	command.Flags().StringVarP(&exerciseID, "exercise-id", "e", "", "exercise id (required)")
	command.Flags().StringVarP(&linkType, "link-type", "l", "", "filter by link type")

	command.Flags().SortFlags = false

	return command
}
