package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit hands f to the worker pool. To be used for work that may be CPU
// intensive, such as building and decoding terrain columns, so callers do not
// stall their own loop on it.
func Submit(f func()) {
	workerQueue <- f
}
