package cmd

import (
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/traininglab/exlink/internal/config"
	"github.com/traininglab/exlink/internal/jobs"
)

func sweepCmd() *cobra.Command {
	var daemon bool

	command := &cobra.Command{
		Use:     "sweep",
		Short:   "remove orphaned auto-linked template entries",
		Long:    `walk every workout template and remove auto-linked warmup/cooldown entries no Main-zone exercise still implies`,
		Example: "exlink sweep --daemon",
		Run: func(cmd *cobra.Command, args []string) {
			st, err := openStore()
			if err != nil {
				logrus.Error(err)
				return
			}

			task := jobs.NewOrphanSweepTask(st, config.LoadConfig().SweepCron)

			if !daemon {
				task.Run()
				return
			}

			executor := jobs.NewTaskExecutor(nil, []jobs.CronJob{task})
			if err := executor.Start(); err != nil {
				logrus.Error(err)
				return
			}
			defer executor.Stop()

			logrus.Infof("orphan sweep scheduled: %s", task.Schedule())

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt)
			<-stop
		},
	}

	command.Flags().BoolVarP(&daemon, "daemon", "d", false, "keep running on the configured cron schedule")

	return command
}
