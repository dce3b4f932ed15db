package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	ebolg "github.com/pvidal/ebolg"
)

// MaxPoolSize bounds the worker pool.
const MaxPoolSize = 32

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(ctx context.Context, input ebolg.Input) (*ebolg.RenderResult, error)
	RenderIndex(ctx context.Context, input ebolg.IndexInput) (*ebolg.RenderResult, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*ebolg.Generator)(nil)

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire() Renderer
	Release(Renderer)
	Size() int
}

// GeneratorPool manages a pool of ebolg.Generator instances for parallel
// rendering. Generators are created lazily on first acquire so a failing
// asset directory surfaces once, not n times at startup.
type GeneratorPool struct {
	size    int
	factory func() (*ebolg.Generator, error)
	sem     chan Renderer
	mu      sync.Mutex
	created int
	initErr error
}

// NewGeneratorPool creates a pool with capacity for n generators built by factory.
func NewGeneratorPool(n int, factory func() (*ebolg.Generator, error)) *GeneratorPool {
	if n < 1 {
		n = 1
	}

	return &GeneratorPool{
		size:    n,
		factory: factory,
		sem:     make(chan Renderer, n),
	}
}

// Compile-time check that GeneratorPool implements Pool.
var _ Pool = (*GeneratorPool)(nil)

// Acquire gets a generator from the pool, creating one if needed.
// Blocks if all generators are in use. Returns nil if creation failed;
// the error is available via InitErr.
func (p *GeneratorPool) Acquire() Renderer {
	// Try to get an existing generator (non-blocking)
	select {
	case gen := <-p.sem:
		return gen
	default:
	}

	// Check if we can create a new generator
	p.mu.Lock()
	if p.initErr != nil {
		p.mu.Unlock()
		return nil
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		gen, err := p.factory()

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.created--
			p.initErr = fmt.Errorf("%w: %v", ErrGeneratorInit, err)
			return nil
		}
		return gen
	}
	p.mu.Unlock()

	// All generators created, wait for one to be released
	return <-p.sem
}

// Release returns a generator to the pool.
func (p *GeneratorPool) Release(gen Renderer) {
	if gen != nil {
		p.sem <- gen
	}
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// InitErr reports the first generator creation failure, if any.
func (p *GeneratorPool) InitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initErr
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxPoolSize)
	}
	return nil
}

// resolvePoolSize determines the pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	// Explicit flag takes priority
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
