package batch

import (
	"context"
	"sync"
)

// Job asks for one model to be generated.
type Job struct {
	Name string
}

// JobResult is sent back for every job a worker picks up.
type JobResult struct {
	Name   string
	Output string
	Format string
	Quads  int
	Err    error
}

// WorkerPool runs jobs on a fixed number of goroutines.
type WorkerPool struct {
	jobQueue chan Job
	results  chan JobResult
	workers  int
	process  func(Job) JobResult
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool starts workers goroutines calling process for each submitted job.
func NewWorkerPool(ctx context.Context, workers, queueSize int, process func(Job) JobResult) *WorkerPool {
	ctx, cancel := context.WithCancel(ctx)
	workers = max(workers, 1)

	pool := &WorkerPool{
		jobQueue: make(chan Job, max(queueSize, 0)),
		results:  make(chan JobResult, max(queueSize, 0)),
		workers:  workers,
		process:  process,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}
	go func() {
		pool.wg.Wait()
		close(pool.results)
	}()

	return pool
}

// SubmitJob queues a job without blocking.
// Returns false if the queue is full.
func (p *WorkerPool) SubmitJob(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking blocks until the job is queued or the pool is cancelled.
func (p *WorkerPool) SubmitJobBlocking(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Results is closed once every worker has exited.
func (p *WorkerPool) Results() <-chan JobResult {
	return p.results
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := p.process(job)

			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Close stops accepting jobs. Workers drain the queue and exit.
func (p *WorkerPool) Close() {
	p.once.Do(func() { close(p.jobQueue) })
}

// Shutdown cancels outstanding work and waits for the workers. Queued jobs
// that were not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}
