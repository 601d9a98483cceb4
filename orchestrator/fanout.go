package orchestrator

import (
	"context"
	"fmt"
	"sync"
)

// Result wraps the output of one unit of work with its error.
type Result[Out any] struct {
	Value Out
	Err   error
	Index int // Original index in the input slice
}

// Stage defines a bounded-concurrency processing stage.
type Stage[In, Out any] struct {
	Name        string
	Concurrency int // Maximum number of concurrent workers
	Process     func(ctx context.Context, input In) (Out, error)
}

// RunStage executes the stage's Process function over all inputs with bounded
// concurrency. Results are returned in the same order as inputs; a failure or
// panic in one worker never stops the others.
func RunStage[In, Out any](ctx context.Context, stage Stage[In, Out], inputs []In) []Result[Out] {
	if len(inputs) == 0 {
		return nil
	}

	concurrency := stage.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(inputs) {
		concurrency = len(inputs)
	}

	results := make([]Result[Out], len(inputs))
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(idx int, in In) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[idx] = Result[Out]{
						Err:   fmt.Errorf("%s stage panicked: %v", stage.Name, r),
						Index: idx,
					}
				}
			}()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[Out]{Err: ctx.Err(), Index: idx}
				return
			}

			if ctx.Err() != nil {
				results[idx] = Result[Out]{Err: ctx.Err(), Index: idx}
				return
			}

			out, err := stage.Process(ctx, in)
			results[idx] = Result[Out]{Value: out, Err: err, Index: idx}
		}(i, input)
	}

	wg.Wait()
	return results
}
