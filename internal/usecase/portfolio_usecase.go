package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/render"
	"portfolio/internal/repository"

	"golang.org/x/net/html"
)

type PortfolioUsecase interface {
	Load(ctx context.Context) (portfolio.Record, error)
	Page(ctx context.Context) ([]byte, error)
}

type snapshotStore interface {
	Set(ctx context.Context, rec portfolio.Record)
	Get(ctx context.Context) (portfolio.Record, bool)
}

type pageRenderer interface {
	Render(doc *html.Node, rec portfolio.Record)
	Fallback(doc *html.Node, name string)
}

type Portfolio struct {
	repo         repository.PortfolioRepository
	snapshot     snapshotStore
	renderer     pageRenderer
	page         func() ([]byte, error)
	fallbackName string
	logger       *log.Logger
}

func NewPortfolioUsecase(
	repo repository.PortfolioRepository,
	snapshot snapshotStore,
	renderer pageRenderer,
	page func() ([]byte, error),
	fallbackName string,
	logger *log.Logger,
) *Portfolio {
	if logger == nil {
		logger = log.Default()
	}
	return &Portfolio{
		repo:         repo,
		snapshot:     snapshot,
		renderer:     renderer,
		page:         page,
		fallbackName: fallbackName,
		logger:       logger,
	}
}

// Load fetches the combined record and makes it the current snapshot. A
// failed fetch leaves the previous snapshot in place.
func (u *Portfolio) Load(ctx context.Context) (portfolio.Record, error) {
	rec, err := u.repo.Fetch(ctx)
	if err != nil {
		u.logger.Printf("[Portfolio] fetch failed error=%v", err)
		return portfolio.Record{}, err
	}
	u.snapshot.Set(ctx, rec)
	u.logger.Printf("[Portfolio] loaded skills=%d projects=%d services_provisioned=%t",
		len(rec.Skills), len(rec.Projects), rec.Services != nil)
	return rec, nil
}

// Page renders the page skeleton with freshly loaded data. When the load
// fails only the fallback name is filled in; the page is still returned.
func (u *Portfolio) Page(ctx context.Context) ([]byte, error) {
	raw, err := u.page()
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := render.ParsePage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	if rec, err := u.Load(ctx); err != nil {
		u.renderer.Fallback(doc, u.fallbackName)
	} else {
		u.renderer.Render(doc, rec)
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, doc); err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}
	return buf.Bytes(), nil
}
