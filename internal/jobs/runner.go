package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

type Job interface {
	Name() string
	Run()
}

// CronJob is a Job with a cron schedule.
type CronJob interface {
	Schedule() string
	Job
}

// TaskExecutor runs one-shot jobs once and cron jobs on their schedule,
// keeping overlapping runs of the same job from stacking up.
type TaskExecutor struct {
	cron        *cron.Cron
	jobs        []Job
	cronJobs    []CronJob
	runningJobs mapset.Set[string]
	mu          sync.Mutex
}

func NewTaskExecutor(jobs []Job, cronJobs []CronJob) *TaskExecutor {
	return &TaskExecutor{
		cron:        cron.New(),
		jobs:        jobs,
		cronJobs:    cronJobs,
		runningJobs: mapset.NewSet[string](),
	}
}

// Start launches the one-shot jobs and schedules the cron jobs. It returns
// after scheduling; Stop halts the cron loop.
func (t *TaskExecutor) Start() error {
	for _, job := range t.jobs {
		go t.run(job)
	}

	for _, job := range t.cronJobs {
		job := job
		err := t.cron.AddFunc(job.Schedule(), func() {
			t.run(job)
		})
		if err != nil {
			return err
		}
	}

	t.cron.Start()

	return nil
}

func (t *TaskExecutor) Stop() {
	t.cron.Stop()
}

func (t *TaskExecutor) run(job Job) {
	t.mu.Lock()
	if t.runningJobs.Contains(job.Name()) {
		t.mu.Unlock()
		logrus.Warnf("job %s is still running, skipping this run", job.Name())
		return
	}
	t.runningJobs.Add(job.Name())
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.runningJobs.Remove(job.Name())
		t.mu.Unlock()
	}()

	job.Run()
}
