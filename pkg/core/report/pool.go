package report

import (
	"sync"

	"github.com/phuslu/log"

	"bfc_reports/pkg/core/projection"
)

// buildResult is the settled outcome of one document build: an artifact path
// on success, a failure marker otherwise. Exactly one of Path/Failure is set.
type buildResult struct {
	Horizon projection.Horizon
	Path    string
	Failure *FailureMarker
}

// buildJob produces the settled result for one horizon. The orchestrator's
// context is captured in the closure.
type buildJob struct {
	horizon projection.Horizon
	run     func() buildResult
}

// workerPool executes document builds on a fixed number of workers and
// gathers every settled result. Jobs never communicate with each other and a
// failed job never disturbs its siblings; drain blocks until every submitted
// job has finished (a join, not a race).
type workerPool struct {
	jobs    chan buildJob
	results chan buildResult
	wg      sync.WaitGroup
	logger  log.Logger
}

func newWorkerPool(workers, capacity int, logger log.Logger) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	p := &workerPool{
		jobs:    make(chan buildJob, capacity),
		results: make(chan buildResult, capacity),
		logger:  logger,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *workerPool) submit(job buildJob) {
	p.jobs <- job
}

// drain closes the job queue, waits for in-flight builds to finish, and
// returns all settled results.
func (p *workerPool) drain() []buildResult {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)

	settled := make([]buildResult, 0, len(p.results))
	for res := range p.results {
		settled = append(settled, res)
	}
	return settled
}

func (p *workerPool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.logger.Debug().
			Int("worker_id", id).
			Str("horizon", string(job.horizon)).
			Msg("Worker picked up document build")
		p.results <- job.run()
	}
}
