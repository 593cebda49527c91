package seeder

func Defaults() []Seeder {
	return []Seeder{
		ProfileSeeder{Profile: SampleProfile},
		SkillsSeeder{Items: SampleSkills},
		ProjectsSeeder{Items: SampleProjects},
		ServicesSeeder{Items: SampleServices},
	}
}
