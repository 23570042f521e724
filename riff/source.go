package riff

import (
	"context"
	"io"
	"runtime"
)

// Source is the random-access byte source the tree reader walks. Any
// io.ReaderAt paired with a known length satisfies it. Neither *os.File
// nor *bytes.Reader has a Len() int64 method, so callers wrap them in a
// small adapter that supplies the length.
type Source interface {
	io.ReaderAt
	Len() int64
}

// Scheduler cooperatively suspends a walk in progress. Yield is called
// before every read the tree reader issues; an implementation backed by
// a goroutine pool can hand control back to its caller here, while the
// blocking entry point passes a nil Scheduler and pays no suspension
// cost at all. Both flavors walk the identical recursive-descent code
// below them, so they always agree on the resulting Tree.
type Scheduler interface {
	Yield(ctx context.Context) error
}

// goschedScheduler is the default cooperative Scheduler: it calls
// runtime.Gosched() to give other goroutines a turn, without any
// external dependency or channel plumbing. Callers that want
// cooperative behavior but have no scheduler of their own pass it to
// ReadTreeContext explicitly; a nil Scheduler means no yielding.
type goschedScheduler struct{}

// NewGoschedScheduler returns the stock goschedScheduler.
func NewGoschedScheduler() Scheduler {
	return goschedScheduler{}
}

func (goschedScheduler) Yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}
