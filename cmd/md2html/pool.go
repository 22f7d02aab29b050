package main

import (
	"runtime"
	"sync"

	md2html "github.com/alnah/go-md2html"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions; rendering is CPU-bound and
	// more workers than cores just churn the scheduler.
	MaxPoolSize = 8
)

// ServicePool manages a pool of Service instances for parallel processing.
// Services are created lazily on first acquire.
type ServicePool struct {
	size    int
	factory func() (*md2html.Service, error)
	sem     chan *md2html.Service
	mu      sync.Mutex
	created int
}

// NewServicePool creates a pool with capacity for n Service instances,
// built by factory on demand.
func NewServicePool(n int, factory func() (*md2html.Service, error)) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:    n,
		factory: factory,
		sem:     make(chan *md2html.Service, n),
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() (*md2html.Service, error) {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc, nil
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		svc, err := p.factory()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return svc, nil
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem, nil
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc *md2html.Service) {
	if svc == nil {
		return
	}
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in containers).
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
