// Package pool implements a fixed-size worker pool. Dispatch goes through a
// single buffered channel, so any idle worker may pick a job up directly,
// jobs are delivered in FIFO order and each one is run by exactly one worker.
package pool

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Job is a single unit of deferred work. It is executed exactly once and
// must capture everything it needs.
type Job func()

var ErrClosed = errors.New("pool: shut down")

type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
	mu   sync.Mutex
	// closed guards against sends into the closed jobs channel. Observed
	// under mu only.
	closed bool
}

// New starts `workers` goroutines, each waiting on the shared queue. The
// number of workers is fixed for the pool's whole lifetime. `backlog` is the
// number of jobs the queue absorbs before Execute starts blocking.
func New(workers, backlog int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("pool: size must be positive, got %d", workers)
	}
	if backlog < 0 {
		backlog = 0
	}

	p := &Pool{
		jobs: make(chan Job, backlog),
	}

	p.wg.Add(workers)
	for id := 0; id < workers; id++ {
		go p.worker(id)
	}

	return p, nil
}

// Execute enqueues a job for whichever worker becomes available first. It
// blocks once the backlog is full. After Shutdown has begun it reports
// ErrClosed instead of panicking, so the caller's accept loop survives
// submissions against a draining pool.
func (p *Pool) Execute(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.jobs <- job

	return nil
}

// Shutdown stops intake, lets the workers drain the queue and blocks until
// every one of them has exited. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.run(id, job)
	}
}

// run is the recovery boundary: a panicking job is reported and the worker
// keeps serving, so pool capacity never shrinks.
func (p *Pool) run(id int, job Job) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("pool: worker %d: recovered: %v", id, v)
		}
	}()

	job()
}
