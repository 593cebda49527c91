package seeder

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

type ProfileSeeder struct {
	Profile portfolio.Profile
}

func (ProfileSeeder) Name() string { return "profile" }

func (s ProfileSeeder) Run(ctx context.Context, db database.DB) error {
	p := s.Profile
	return insertIgnore(ctx, db, "profile",
		[]string{"id", "name", "title", "summary", "location", "email", "phone", "linkedin", "github", "education_degree", "education_uni", "education_year"},
		p.ID, p.Name, p.Title, p.Summary, p.Location, p.Email, p.Phone, p.LinkedIn, p.GitHub, p.EducationDegree, p.EducationUni, p.EducationYear,
	)
}

type SkillsSeeder struct {
	Items []portfolio.SkillCategory
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	for _, it := range s.Items {
		if err := insertIgnore(ctx, db, "skills", []string{"id", "category", "skill_list"}, it.ID, it.Category, it.SkillList); err != nil {
			return err
		}
	}
	return nil
}

type ProjectsSeeder struct {
	Items []portfolio.Project
}

func (ProjectsSeeder) Name() string { return "projects" }

func (s ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	for _, it := range s.Items {
		err := insertIgnore(ctx, db, "projects",
			[]string{"id", "title", "icon_class", "short_desc", "full_desc", "tech_stack", "github_link"},
			it.ID, it.Title, it.IconClass, it.ShortDesc, it.FullDesc, it.TechStack, it.GitHubLink,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type ServicesSeeder struct {
	Items []portfolio.Service
}

func (ServicesSeeder) Name() string { return "services" }

func (s ServicesSeeder) Run(ctx context.Context, db database.DB) error {
	for _, it := range s.Items {
		if err := insertIgnore(ctx, db, "services", []string{"id", "title", "icon_class", "description"}, it.ID, it.Title, it.IconClass, it.Description); err != nil {
			return err
		}
	}
	return nil
}

func insertIgnore(ctx context.Context, db database.DB, table string, columns []string, args ...any) error {
	if len(columns) != len(args) {
		return fmt.Errorf("insert %s: %d columns, %d values", table, len(columns), len(args))
	}
	d := db.Dialect()
	ph := make([]string, len(columns))
	for i := range columns {
		ph[i] = d.Placeholder(i + 1)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING`,
		table, strings.Join(columns, ", "), strings.Join(ph, ", "),
	)
	_, err := db.Exec(ctx, query, args...)
	return err
}
