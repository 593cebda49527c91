package scene

import (
	"context"
	"log"
	"time"
)

type Publisher interface {
	Publish(f Frame)
}

type PublisherFunc func(f Frame)

func (fn PublisherFunc) Publish(f Frame) { fn(f) }

type LoopConfig struct {
	FPS          int
	PublishEvery int
}

// Loop advances a Scene at a fixed rate and hands every PublishEvery-th
// state to the publisher. One timer is re-armed after each tick, so a slow
// publisher delays the next tick instead of queueing ticks.
type Loop struct {
	scene     *Scene
	publisher Publisher
	interval  time.Duration
	every     int
	logger    *log.Logger
}

func NewLoop(s *Scene, p Publisher, cfg LoopConfig, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	every := cfg.PublishEvery
	if every <= 0 {
		every = 1
	}
	return &Loop{
		scene:     s,
		publisher: p,
		interval:  time.Second / time.Duration(fps),
		every:     every,
		logger:    logger,
	}
}

// Run ticks until ctx is done and returns ctx's error.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Printf("[Scene] loop started interval=%s publish_every=%d", l.interval, l.every)

	t := time.NewTimer(l.interval)
	defer t.Stop()

	var ticks, seq uint64
	for {
		select {
		case <-ctx.Done():
			l.logger.Printf("[Scene] loop stopped ticks=%d frames=%d", ticks, seq)
			return ctx.Err()
		case <-t.C:
		}

		l.scene.Advance()
		ticks++
		if ticks%uint64(l.every) == 0 && l.publisher != nil {
			seq++
			l.publisher.Publish(l.scene.Frame(seq))
		}
		t.Reset(l.interval)
	}
}
