package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/export"
	"portfolio/internal/render"
	"portfolio/internal/snapshot"
	"portfolio/web"
)

type mockPortfolioRepo struct {
	rec   portfolio.Record
	err   error
	calls int
}

func (m *mockPortfolioRepo) Fetch(context.Context) (portfolio.Record, error) {
	m.calls++
	return m.rec, m.err
}

type mockExporter struct {
	err   error
	calls int
}

func (m *mockExporter) Export(_ portfolio.Record, w io.Writer) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	_, err := w.Write([]byte("%PDF-test"))
	return err
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func loadedRecord() portfolio.Record {
	return portfolio.Record{
		Profile:  &portfolio.Profile{Name: "Rizwan Ahmed", Title: "Engineer", Summary: "Builds things. Often."},
		Skills:   []portfolio.SkillCategory{{Category: "Languages", SkillList: "Go"}},
		Projects: []portfolio.Project{},
	}
}

func newPortfolio(repo *mockPortfolioRepo, holder *snapshot.Holder) *Portfolio {
	return NewPortfolioUsecase(repo, holder, render.New(nil), web.Page, "Fallback Name", quietLogger())
}

func TestPortfolioUsecase_Load_StoresSnapshot(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	uc := newPortfolio(&mockPortfolioRepo{rec: loadedRecord()}, holder)

	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rec, ok := holder.Get(context.Background())
	if !ok || rec.Profile == nil || rec.Profile.Name != "Rizwan Ahmed" {
		t.Fatalf("expected snapshot stored, got %+v ok=%v", rec, ok)
	}
}

func TestPortfolioUsecase_Load_FailureKeepsPrevious(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	holder.Set(context.Background(), loadedRecord())

	uc := newPortfolio(&mockPortfolioRepo{err: errors.New("connection refused")}, holder)
	if _, err := uc.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := holder.Get(context.Background()); !ok {
		t.Fatalf("expected previous snapshot kept")
	}
}

func TestPortfolioUsecase_Page_Renders(t *testing.T) {
	uc := newPortfolio(&mockPortfolioRepo{rec: loadedRecord()}, snapshot.NewHolder(nil, quietLogger()))

	b, err := uc.Page(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `id="p-name">Rizwan Ahmed<`) {
		t.Fatalf("expected name rendered")
	}
	if !strings.Contains(out, "skill-card") {
		t.Fatalf("expected skill cards rendered")
	}
}

func TestPortfolioUsecase_Page_FallbackOnFailure(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	uc := newPortfolio(&mockPortfolioRepo{err: errors.New("boom")}, holder)

	b, err := uc.Page(context.Background())
	if err != nil {
		t.Fatalf("expected page despite fetch failure, got %v", err)
	}
	if !strings.Contains(string(b), `id="p-name">Fallback Name<`) {
		t.Fatalf("expected fallback name")
	}
	if _, ok := holder.Get(context.Background()); ok {
		t.Fatalf("expected nothing loaded")
	}
}

func TestCVUsecase_NotLoaded(t *testing.T) {
	exp := &mockExporter{}
	uc := NewCVUsecase(snapshot.NewHolder(nil, quietLogger()), exp, quietLogger())

	var buf bytes.Buffer
	_, err := uc.Export(context.Background(), &buf)
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if exp.calls != 0 || buf.Len() != 0 {
		t.Fatalf("expected no export attempt")
	}
}

func TestCVUsecase_Export(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	rec := loadedRecord()
	rec.Profile.Name = "Ana Maria Lopez"
	holder.Set(context.Background(), rec)

	uc := NewCVUsecase(holder, &mockExporter{}, quietLogger())
	var buf bytes.Buffer
	name, err := uc.Export(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if name != "Ana_Maria Lopez_CV.pdf" {
		t.Fatalf("unexpected filename %q", name)
	}
	if buf.String() != "%PDF-test" {
		t.Fatalf("unexpected body %q", buf.String())
	}
}

func TestCVUsecase_NoProfile(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	holder.Set(context.Background(), portfolio.Record{})

	exp := &mockExporter{}
	uc := NewCVUsecase(holder, exp, quietLogger())
	if _, err := uc.Export(context.Background(), io.Discard); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
	if exp.calls != 0 {
		t.Fatalf("expected exporter not called")
	}
}

func TestCVUsecase_ExportFailureWritesNothing(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	holder.Set(context.Background(), loadedRecord())

	uc := NewCVUsecase(holder, &mockExporter{err: errors.New("disk full")}, quietLogger())
	var buf bytes.Buffer
	if _, err := uc.Export(context.Background(), &buf); err == nil {
		t.Fatalf("expected error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written")
	}
}

func TestCVUsecase_RealExporter(t *testing.T) {
	holder := snapshot.NewHolder(nil, quietLogger())
	holder.Set(context.Background(), loadedRecord())

	uc := NewCVUsecase(holder, export.New(export.DefaultLayout()), quietLogger())
	var buf bytes.Buffer
	name, err := uc.Export(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if name != "Rizwan_Ahmed_CV.pdf" || !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected export name=%q", name)
	}
}
