package mgtools

import (
	"context"
	"errors"
	"sync"
)

func feedIndices(ctx context.Context, n int) (<-chan int, <-chan error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i := 0; i < n; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				errc <- errors.New("conversion cancelled")
				return
			}
		}
	}()
	return out, errc
}

func recordWorker(ctx context.Context, in <-chan int, fn func(int) error) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for i := range in {
			if ctx.Err() != nil {
				return
			}
			if err := fn(i); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// forEach calls fn for every index in [0, n) across the converter's workers
// and returns the first error.
func (c *Converter) forEach(n int, fn func(int) error) error {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	indices, errc := feedIndices(ctx, n)
	errcList = append(errcList, errc)

	for i := 0; i < c.workers; i++ {
		errcList = append(errcList, recordWorker(ctx, indices, fn))
	}

	return waitForPipeline(errcList...)
}
