// Package populate executes a plan against the filesystem: it materializes
// the directory tree, then drives a bounded pool of workers writing one file
// each. Preview mode walks the same plan without touching the filesystem and
// yields byte-identical paths to a real run.
package populate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Joe-Costa/ClusterPopulator/internal/content"
	"github.com/Joe-Costa/ClusterPopulator/internal/plan"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

// DefaultConcurrency bounds the worker pool when no override is given.
const DefaultConcurrency = 10

// ProgressFunc is invoked at file-completion boundaries with the number of
// finished files and the plan total. It must be safe for concurrent calls.
type ProgressFunc func(done, total int)

// Options configures a Populator.
type Options struct {
	// Root is the output directory. It is created if missing; failure to
	// create it aborts the run.
	Root string

	// Concurrency bounds the number of in-flight file writes.
	// Zero or negative means DefaultConcurrency.
	Concurrency int

	// Preview reports the layout without filesystem side effects.
	Preview bool

	// NoTimestamps skips forging file times; written files then carry the
	// wall-clock time of the run.
	NoTimestamps bool

	// Producer supplies payload bytes per extension and content kind.
	Producer content.Producer

	// Progress, if set, receives completion counts.
	Progress ProgressFunc
}

// Populator writes planned files under a root directory.
type Populator struct {
	opts Options
	src  *rng.Source
}

// New returns a populator. The source must be the same one the plan was
// built from, so content streams re-derive per file index.
func New(src *rng.Source, opts Options) *Populator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Producer == nil {
		opts.Producer = content.NewGenerator()
	}
	return &Populator{opts: opts, src: src}
}

// Paths returns the absolute target path of every planned file, in plan
// order. Preview and real execution both resolve paths through here.
func (p *Populator) Paths(pl *plan.Plan) []string {
	paths := make([]string, len(pl.Files))
	for i, f := range pl.Files {
		paths[i] = filepath.Join(p.opts.Root, f.RelPath())
	}
	return paths
}

// Run executes the plan. Per-file failures are aggregated into the result
// and never abort sibling writes; an unusable output root aborts immediately.
func (p *Populator) Run(ctx context.Context, pl *plan.Plan) (*Result, error) {
	start := time.Now()
	dirs := pl.Directories()

	// Preview touches nothing, so it claims nothing: no directories created,
	// no bytes written.
	if p.opts.Preview {
		return &Result{
			Planned: len(pl.Files),
			Elapsed: time.Since(start),
		}, nil
	}

	if err := os.MkdirAll(p.opts.Root, 0o755); err != nil {
		return nil, fmt.Errorf("create output root %s: %w", p.opts.Root, err)
	}

	// All directories are created before any worker starts, so no write can
	// race a mkdir. MkdirAll treats already-exists as success, which also
	// covers two planned dirs sharing a parent.
	badDirs := make(map[string]error)
	created := 0
	for _, d := range dirs {
		abs := filepath.Join(p.opts.Root, d)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			badDirs[d] = err
			continue
		}
		created++
	}

	res := &Result{
		Planned:     len(pl.Files),
		DirsCreated: created,
	}

	jobs := make(chan plan.PlannedFile)
	failures := make(chan Failure, p.opts.Concurrency)

	var completed int64
	var createdFiles, failedFiles int64
	var bytesWritten int64
	total := len(pl.Files)

	var wg sync.WaitGroup
	for w := 0; w < p.opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				if fail, n := p.writeOne(f, badDirs); fail != nil {
					atomic.AddInt64(&failedFiles, 1)
					failures <- *fail
				} else {
					atomic.AddInt64(&createdFiles, 1)
					atomic.AddInt64(&bytesWritten, n)
				}
				done := atomic.AddInt64(&completed, 1)
				if p.opts.Progress != nil {
					p.opts.Progress(int(done), total)
				}
			}
		}()
	}

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for f := range failures {
			res.Failures = append(res.Failures, f)
		}
	}()

	// Dispatch in plan order. Cancellation stops issuing new work; in-flight
	// writes finish so the result reflects exactly what landed on disk.
dispatch:
	for _, f := range pl.Files {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- f:
		}
	}
	close(jobs)
	wg.Wait()
	close(failures)
	<-collectorDone

	res.Created = int(createdFiles)
	res.Failed = int(failedFiles)
	res.BytesWritten = bytesWritten
	res.Elapsed = time.Since(start)
	return res, nil
}

func (p *Populator) writeOne(f plan.PlannedFile, badDirs map[string]error) (*Failure, int64) {
	target := filepath.Join(p.opts.Root, f.RelPath())

	if err, ok := badDirs[f.Dir]; ok {
		return &Failure{
			Path:    target,
			Seq:     f.Seq,
			Kind:    FailDirectory,
			Message: err.Error(),
		}, 0
	}

	payload := p.opts.Producer.Produce(f.Ext, f.Kind, p.src.Content(f.Seq))
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		return &Failure{
			Path:    target,
			Seq:     f.Seq,
			Kind:    classify(err),
			Message: err.Error(),
		}, 0
	}

	if !p.opts.NoTimestamps {
		atime, mtime := stampTimes(f.Name, p.src.Stamp(f.Seq), time.Now())
		// Forged times are cosmetic; a filesystem that refuses them still
		// holds a perfectly good file.
		_ = os.Chtimes(target, atime, mtime)
	}
	return nil, int64(len(payload))
}

func classify(err error) FailureKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return FailPermission
	case errors.Is(err, syscall.ENOSPC):
		return FailDiskFull
	default:
		return FailWrite
	}
}
