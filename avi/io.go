package avi

import (
	"context"

	"github.com/rifftree/avireader/riff"
)

// Scheduler is the same cooperative-yield contract the riff package
// uses; it is re-exported here so callers of ReadHeaderContext don't
// need to import riff just to name the type.
type Scheduler = riff.Scheduler

// NewGoschedScheduler returns the stock runtime.Gosched-based
// Scheduler, for callers that want cooperative yielding without
// supplying their own.
func NewGoschedScheduler() Scheduler {
	return riff.NewGoschedScheduler()
}

func riffReadTreeContext(ctx context.Context, src riff.Source, sched Scheduler) (riff.Tree, error) {
	return riff.ReadTreeContext(ctx, src, sched)
}

// streamIO threads the same ctx/Scheduler pairing the RIFF walker uses
// through the header-parsing reads issued directly against src (avih,
// strh, strf, strd, strn), so a cooperative caller sees the same
// suspension behavior across the whole of ReadHeaderContext, not just
// the structural tree walk.
type streamIO struct {
	ctx   context.Context
	sched Scheduler
	src   riff.Source
}

func (s *streamIO) readAt(buf []byte, pos uint64) error {
	if s.sched != nil {
		if err := s.sched.Yield(s.ctx); err != nil {
			return err
		}
	}
	if err := s.ctx.Err(); err != nil {
		return err
	}
	_, err := s.src.ReadAt(buf, int64(pos))
	return err
}
