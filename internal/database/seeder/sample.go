package seeder

import "portfolio/internal/domain/portfolio"

var SampleProfile = portfolio.Profile{
	ID:              1,
	Name:            "Rizwan Ahmed",
	Title:           "Software Engineer",
	Summary:         "Software engineer focused on data-heavy web backends. Comfortable across SQL stores, caching layers and the delivery pipeline. Enjoys turning vague product ideas into dependable services.",
	Location:        "Lahore, Pakistan",
	Email:           "rizwan@example.com",
	Phone:           "+92 300 0000000",
	LinkedIn:        "linkedin.com/in/rizwan-ahmed",
	GitHub:          "github.com/rizwan-ahmed",
	EducationDegree: "BS Computer Science",
	EducationUni:    "University of the Punjab",
	EducationYear:   "2021",
}

var SampleSkills = []portfolio.SkillCategory{
	{ID: 1, Category: "Languages", SkillList: "Go, Python, JavaScript, SQL"},
	{ID: 2, Category: "Frameworks & Libraries", SkillList: "Fiber, React, Node.js, Three.js"},
	{ID: 3, Category: "Tools & Platforms", SkillList: "Docker, Git, PostgreSQL, Redis, Linux"},
}

var SampleProjects = []portfolio.Project{
	{
		ID:         1,
		Title:      "Portfolio Platform",
		IconClass:  "fa-globe",
		ShortDesc:  "Database-driven personal site with on-demand PDF résumé export.",
		FullDesc:   "Built a single data endpoint over a TLS-only SQL store|Rendered profile, skills and projects from one combined record|Generated a paginated CV from the cached record",
		TechStack:  "Go, Fiber, PostgreSQL, Redis",
		GitHubLink: "https://github.com/rizwan-ahmed/portfolio",
	},
	{
		ID:         2,
		Title:      "Job Feed Aggregator",
		IconClass:  "fa-briefcase",
		ShortDesc:  "Collects job posts from several boards and ranks them by skill match.",
		FullDesc:   "Built scrapers for three job boards|Improved match ranking with synonym expansion|Shipped a websocket feed for new postings",
		TechStack:  "Go, pgx, WebSocket",
		GitHubLink: "https://github.com/rizwan-ahmed/job-feed",
	},
}

var SampleServices = []portfolio.Service{
	{ID: 1, Title: "Backend Development", IconClass: "fa-server", Description: "APIs and data services with clear contracts."},
	{ID: 2, Title: "Database Design", IconClass: "fa-database", Description: "Schemas, queries and migrations that age well."},
	{ID: 3, Title: "Web Frontends", IconClass: "fa-laptop-code", Description: "Fast, accessible pages wired to real data."},
}
