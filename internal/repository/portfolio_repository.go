package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

type PortfolioRepository interface {
	Fetch(ctx context.Context) (portfolio.Record, error)
}

type SQLPortfolioRepository struct {
	db       database.DB
	services bool
}

// NewSQLPortfolioRepository builds the data provider. When services is
// false the services table is never queried and Record.Services stays nil.
func NewSQLPortfolioRepository(db database.DB, services bool) *SQLPortfolioRepository {
	return &SQLPortfolioRepository{db: db, services: services}
}

const (
	profileQuery = `SELECT id, name, title, summary, location, email, phone, linkedin, github,
	education_degree, education_uni, education_year
FROM profile ORDER BY id LIMIT 1`
	skillsQuery   = `SELECT id, category, skill_list FROM skills ORDER BY id`
	projectsQuery = `SELECT id, title, icon_class, short_desc, full_desc, tech_stack, github_link FROM projects ORDER BY id`
	servicesQuery = `SELECT id, title, icon_class, description FROM services ORDER BY id`
)

func (r *SQLPortfolioRepository) Fetch(ctx context.Context) (portfolio.Record, error) {
	if r == nil || r.db == nil {
		return portfolio.Record{}, fmt.Errorf("nil db")
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return portfolio.Record{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	profile, err := fetchProfile(ctx, conn)
	if err != nil {
		return portfolio.Record{}, fmt.Errorf("query profile: %w", err)
	}

	skills, err := queryAll(ctx, conn, skillsQuery, func(rows database.Rows) (portfolio.SkillCategory, error) {
		var s portfolio.SkillCategory
		err := rows.Scan(&s.ID, &s.Category, &s.SkillList)
		return s, err
	})
	if err != nil {
		return portfolio.Record{}, fmt.Errorf("query skills: %w", err)
	}

	projects, err := queryAll(ctx, conn, projectsQuery, func(rows database.Rows) (portfolio.Project, error) {
		var p portfolio.Project
		err := rows.Scan(&p.ID, &p.Title, &p.IconClass, &p.ShortDesc, &p.FullDesc, &p.TechStack, &p.GitHubLink)
		return p, err
	})
	if err != nil {
		return portfolio.Record{}, fmt.Errorf("query projects: %w", err)
	}

	rec := portfolio.Record{Profile: profile, Skills: skills, Projects: projects}

	if r.services {
		services, err := queryAll(ctx, conn, servicesQuery, func(rows database.Rows) (portfolio.Service, error) {
			var s portfolio.Service
			err := rows.Scan(&s.ID, &s.Title, &s.IconClass, &s.Description)
			return s, err
		})
		if err != nil {
			return portfolio.Record{}, fmt.Errorf("query services: %w", err)
		}
		rec.Services = services
	}

	return rec, nil
}

func fetchProfile(ctx context.Context, conn database.Conn) (*portfolio.Profile, error) {
	var p portfolio.Profile
	err := conn.QueryRow(ctx, profileQuery).Scan(
		&p.ID, &p.Name, &p.Title, &p.Summary, &p.Location, &p.Email, &p.Phone, &p.LinkedIn, &p.GitHub,
		&p.EducationDegree, &p.EducationUni, &p.EducationYear,
	)
	if errors.Is(err, database.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func queryAll[T any](ctx context.Context, conn database.Conn, query string, scan func(database.Rows) (T, error)) ([]T, error) {
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
