package cmd

import (
	"github.com/spf13/cobra"
	"github.com/traininglab/exlink/internal/config"
	"github.com/traininglab/exlink/internal/model"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Run: func(cmd *cobra.Command, args []string) {
			db, err := config.GetDb(config.LoadConfig())
			if err != nil {
				panic(err)
			}
			err = model.Migrate(db)
			if err != nil {
				panic(err)
			}
		},
	}

	return command
}
