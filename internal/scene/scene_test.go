package scene

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNew_Deterministic(t *testing.T) {
	a := New(500, 7).Geometry()
	b := New(500, 7).Geometry()

	if len(a.Particles.Positions) != 1500 {
		t.Fatalf("expected 1500 coordinates, got %d", len(a.Particles.Positions))
	}
	for i := range a.Particles.Positions {
		if a.Particles.Positions[i] != b.Particles.Positions[i] {
			t.Fatalf("same seed gave different particle %d", i)
		}
		if v := a.Particles.Positions[i]; v < -50 || v > 50 {
			t.Fatalf("particle outside the cube: %v", v)
		}
	}

	if a.Sphere.Radius != 10 || a.Sphere.Detail != 1 || a.Camera.Z != 30 {
		t.Fatalf("unexpected geometry %+v", a)
	}
}

func TestNew_NegativeCount(t *testing.T) {
	if n := len(New(-1, 1).Geometry().Particles.Positions); n != 0 {
		t.Fatalf("expected no particles, got %d", n)
	}
}

func TestAdvance(t *testing.T) {
	s := New(0, 1)
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	f := s.Frame(3)
	if f.Seq != 3 || !near(f.SphereX, 0.02) || !near(f.SphereY, 0.02) || !near(f.ParticlesY, -0.005) {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestLoop_PublishesEveryNthTick(t *testing.T) {
	frames := make(chan Frame, 16)
	pub := PublisherFunc(func(f Frame) {
		select {
		case frames <- f:
		default:
		}
	})
	l := NewLoop(New(0, 1), pub, LoopConfig{FPS: 1000, PublishEvery: 3}, log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var got []Frame
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case f := <-frames:
			got = append(got, f)
		case <-timeout:
			t.Fatalf("timed out waiting for frames")
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	for i, f := range got {
		seq := uint64(i + 1)
		want := float64(seq*3) * SphereStep
		if f.Seq != seq || !near(f.SphereX, want) || !near(f.ParticlesY, float64(seq*3)*ParticlesStep) {
			t.Fatalf("frame %d: got %+v, want sphere_x=%v", i, f, want)
		}
	}
}

func TestLoop_StopsWhenCancelled(t *testing.T) {
	l := NewLoop(New(0, 1), nil, LoopConfig{}, log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
