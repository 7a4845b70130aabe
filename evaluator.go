package bloomfilter

import (
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Evaluator computes every digest of a Family for one item.
//
// Evaluate must set digests[i] = f.Digest(i, item) for each i < f.Len() and
// return only once all of them are written. len(digests) must equal f.Len().
type Evaluator interface {
	Evaluate(f *Family, item []byte, digests []uint64)
}

// Sequential evaluates the family in order on the calling goroutine.
type Sequential struct{}

func (Sequential) Evaluate(f *Family, item []byte, digests []uint64) {
	for i := 0; i < f.Len(); i++ {
		digests[i] = f.Digest(i, item)
	}
}

type job struct {
	family  *Family
	item    []byte
	index   int
	digests []uint64
	done    *sync.WaitGroup
}

// Pool fans digest computation out over a fixed set of long-lived
// goroutines. Each job is one hash function index; workers write into the
// job's own slot of the caller's digest slice, so no slot has two writers.
//
// A Pool is safe for concurrent use and may be shared by many filters.
// Evaluate after Close falls back to Sequential.
type Pool struct {
	jobs    chan job
	workers int
	g       errgroup.Group

	mu     sync.RWMutex
	closed bool

	logger *slog.Logger
}

// NewPool starts the pool's workers. The caller must Close it.
func NewPool(opts ...PoolOption) *Pool {
	c := poolConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}

	p := &Pool{
		jobs:    make(chan job, c.workers),
		workers: c.workers,
		logger:  c.logger.With("component", "bloomfilter.pool"),
	}
	for i := 0; i < c.workers; i++ {
		p.g.Go(p.work)
	}
	p.logger.Debug("hash pool started", "workers", c.workers)
	return p
}

// Workers returns the number of pool goroutines.
func (p *Pool) Workers() int { return p.workers }

func (p *Pool) work() error {
	for j := range p.jobs {
		j.digests[j.index] = j.family.Digest(j.index, j.item)
		j.done.Done()
	}
	return nil
}

func (p *Pool) Evaluate(f *Family, item []byte, digests []uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		Sequential{}.Evaluate(f, item, digests)
		return
	}

	var wg sync.WaitGroup
	wg.Add(f.Len())
	for i := 0; i < f.Len(); i++ {
		p.jobs <- job{family: f, item: item, index: i, digests: digests, done: &wg}
	}
	wg.Wait()
}

// Close stops the workers once queued jobs drain. It is safe to call more
// than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	err := p.g.Wait()
	p.logger.Debug("hash pool stopped", "workers", p.workers)
	return err
}
