package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exlink",
	Short: "exercise link graph tool",
	Example: `exlink link add -s <source-id> -t <target-id> -l warmup
exlink link list -e <exercise-id>
exlink link remove -i <link-id> --keep-reverse
exlink autolink attach -w <template-id> -e <exercise-id>
exlink autolink orphans -w <template-id> -e <exercise-id>
exlink sweep`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.AddCommand(linkCmd)
	linkCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	linkCmd.AddCommand(addLinkCmd())
	linkCmd.AddCommand(removeLinkCmd())
	linkCmd.AddCommand(listLinksCmd())

	rootCmd.AddCommand(autolinkCmd)
	autolinkCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	autolinkCmd.AddCommand(attachAutoLinksCmd())
	autolinkCmd.AddCommand(listOrphansCmd())

	rootCmd.AddCommand(sweepCmd())

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
