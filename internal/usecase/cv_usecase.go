package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/export"
)

type CVUsecase interface {
	Export(ctx context.Context, w io.Writer) (string, error)
}

type documentExporter interface {
	Export(rec portfolio.Record, w io.Writer) error
}

type CV struct {
	snapshot snapshotStore
	exporter documentExporter
	logger   *log.Logger
}

func NewCVUsecase(snapshot snapshotStore, exporter documentExporter, logger *log.Logger) *CV {
	if logger == nil {
		logger = log.Default()
	}
	return &CV{snapshot: snapshot, exporter: exporter, logger: logger}
}

// Export writes the CV for the current snapshot to w and returns the
// download filename. Nothing is written when it fails.
func (u *CV) Export(ctx context.Context, w io.Writer) (string, error) {
	rec, ok := u.snapshot.Get(ctx)
	if !ok {
		return "", ErrNotLoaded
	}
	if rec.Profile == nil {
		return "", ErrNoProfile
	}

	var buf bytes.Buffer
	if err := u.exporter.Export(rec, &buf); err != nil {
		if errors.Is(err, export.ErrNoProfile) {
			return "", ErrNoProfile
		}
		u.logger.Printf("[CV] export failed error=%v", err)
		return "", err
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return "", err
	}

	name := portfolio.CVFilename(rec.Profile.Name, "pdf")
	u.logger.Printf("[CV] exported file=%q bytes=%d", name, n)
	return name, nil
}
