package stress

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultConcurrency = 4

// runnerInput is a workload along with its position in the batch
type runnerInput struct {
	Workload Workload
	Index    int
}

// Result of running a Workload
type Result struct {
	Report Report
	Err    error
	index  int
}

// Index is the position of the workload within the batch
func (r Result) Index() int {
	return r.index
}

// RunnerOpts are the options to configure how a batch of
// workloads is run
type RunnerOpts struct {
	// Concurrency specifies the maximum number of goroutines
	// that will be used to run the workloads. Every workload
	// owns its tree, so trees are never shared between goroutines
	Concurrency int
}

// Runner runs a batch of workloads until all of them complete
// and returns their results in the order in which the workloads
// were provided
type Runner struct {
	opts    RunnerOpts
	running int32
}

// NewRunner creates a new instance of a Runner using the default
// values as configuration
func NewRunner() *Runner {
	return NewRunnerWithOpts(RunnerOpts{
		Concurrency: defaultConcurrency,
	})
}

// NewRunnerWithOpts creates a new instance of a Runner with the
// specified options
func NewRunnerWithOpts(opts RunnerOpts) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	return &Runner{opts: opts}
}

// Run runs all the workloads and returns one result per workload,
// in the same order. Workloads that did not get to run because ctx
// was done report ctx's error.
func (r *Runner) Run(ctx context.Context, workloads []Workload) []Result {
	if ok := atomic.CompareAndSwapInt32(&r.running, 0, 1); !ok {
		panic("attempt to call Run when Runner is already processing a batch")
	}

	defer func() {
		if ok := atomic.CompareAndSwapInt32(&r.running, 1, 0); !ok {
			panic("attempt to stop Runner that is not running")
		}
	}()

	results := make([]Result, len(workloads))
	for i := range results {
		results[i] = Result{index: i, Report: Report{ID: workloads[i].ID}, Err: context.Canceled}
	}

	wg := &sync.WaitGroup{}
	wg.Add(r.opts.Concurrency)
	inC := make(chan runnerInput)
	outC := make(chan Result, r.opts.Concurrency)

	for i := 0; i < r.opts.Concurrency; i++ {
		go r.run(ctx, inC, outC, wg)
	}

	go func() {
		r.sendInputs(ctx, workloads, inC)
		close(inC)
		wg.Wait()
		close(outC)
	}()

	for res := range outC {
		results[res.index] = res
	}

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Err == context.Canceled {
				results[i].Err = err
			}
		}
	}

	return results
}

func (r *Runner) sendInputs(
	ctx context.Context,
	workloads []Workload,
	inC chan<- runnerInput,
) {
	for i, w := range workloads {
		select {
		case <-ctx.Done():
			return
		case inC <- runnerInput{Workload: w, Index: i}:
		}
	}
}

func (r *Runner) run(
	ctx context.Context,
	inC <-chan runnerInput,
	outC chan<- Result,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for in := range inC {
		report, err := in.Workload.Run(ctx)
		outC <- Result{
			Report: report,
			Err:    err,
			index:  in.Index,
		}
	}
}
