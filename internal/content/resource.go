package content

import (
	"context"
	"fmt"
	"sort"
)

// Resource exposes the repository operations for one ordered content table
// in a uniform shape, so the HTTP layer can register every endpoint set
// from a single registrar instead of one handler file per entity.
type Resource struct {
	// Name labels the resource in operation codes and log entries.
	Name string
	// ParentColumn names the foreign key column for child resources, empty
	// for top-level ones. EnsureParent reports ErrNotFound when the
	// referenced parent row is absent.
	ParentColumn string
	EnsureParent func(ctx context.Context, parentID string) error

	List   func(ctx context.Context) (any, error)
	Create func(ctx context.Context, columns map[string]any) (any, error)
	Update func(ctx context.Context, id string, columns map[string]any) (any, error)
	Delete func(ctx context.Context, id string) (int64, error)
}

type resourceOptions[T any] struct {
	orderExpr string
	preloads  []string
	normalize func(*T)
}

func newResource[T any](s *Service, name string, opts resourceOptions[T]) Resource {
	orderExpr := opts.orderExpr
	if orderExpr == "" {
		orderExpr = "display_order ASC, created_at ASC"
	}

	return Resource{
		Name: name,
		List: func(ctx context.Context) (any, error) {
			rows, err := listOrdered[T](s, ctx, opCode(name, "list"), orderExpr, opts.preloads...)
			if err != nil {
				return nil, err
			}
			if opts.normalize != nil {
				for i := range rows {
					opts.normalize(&rows[i])
				}
			}
			return rows, nil
		},
		Create: func(ctx context.Context, columns map[string]any) (any, error) {
			return createRow[T](s, ctx, opCode(name, "create"), columns)
		},
		Update: func(ctx context.Context, id string, columns map[string]any) (any, error) {
			row, err := patchRow[T](s, ctx, opCode(name, "update"), id, columns, opts.preloads...)
			if err != nil {
				return nil, err
			}
			if opts.normalize != nil {
				opts.normalize(&row)
			}
			return row, nil
		},
		Delete: func(ctx context.Context, id string) (int64, error) {
			return deleteRow[T](s, ctx, opCode(name, "delete"), id)
		},
	}
}

func childResource[T, P any](s *Service, name, parentColumn string, opts resourceOptions[T]) Resource {
	resource := newResource[T](s, name, opts)
	resource.ParentColumn = parentColumn
	resource.EnsureParent = func(ctx context.Context, parentID string) error {
		return parentExists[P](s, ctx, opCode(name, "parent_check"), parentID)
	}
	return resource
}

func opCode(name, verb string) string {
	return fmt.Sprintf("content.%s.%s", name, verb)
}

// sortByDisplayOrder re-sorts a preloaded child collection. The storage
// engine's join does not guarantee nested ordering, so this runs on every
// aggregate read.
func sortByDisplayOrder[T any](items []T, order func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return order(items[i]) < order(items[j])
	})
}

func normalizeCertification(c *Certification) {
	sortByDisplayOrder(c.Skills, func(s CertificationSkill) int { return s.DisplayOrder })
}

func normalizeEducation(e *Education) {
	sortByDisplayOrder(e.Achievements, func(a EducationAchievement) int { return a.DisplayOrder })
}

func normalizeProject(p *Project) {
	sortByDisplayOrder(p.Technologies, func(t ProjectTechnology) int { return t.DisplayOrder })
	sortByDisplayOrder(p.Features, func(f ProjectFeature) int { return f.DisplayOrder })
}

func normalizeSkillCategory(c *SkillCategory) {
	sortByDisplayOrder(c.Skills, func(s Skill) int { return s.DisplayOrder })
}

// AboutStats returns the repository operations for about-page stats.
func (s *Service) AboutStats() Resource {
	return newResource[AboutStat](s, "about_stats", resourceOptions[AboutStat]{})
}

// PersonalityTraits returns the repository operations for about-page traits.
func (s *Service) PersonalityTraits() Resource {
	return newResource[PersonalityTrait](s, "personality_traits", resourceOptions[PersonalityTrait]{})
}

// Achievements returns the repository operations for achievements; ordering
// ties break by the most recent year.
func (s *Service) Achievements() Resource {
	return newResource[Achievement](s, "achievements", resourceOptions[Achievement]{
		orderExpr: "display_order ASC, year DESC",
	})
}

// Recognitions returns the repository operations for recognitions.
func (s *Service) Recognitions() Resource {
	return newResource[Recognition](s, "recognitions", resourceOptions[Recognition]{})
}

// Certifications returns the aggregate repository operations for
// certifications with their skill tags.
func (s *Service) Certifications() Resource {
	return newResource[Certification](s, "certifications", resourceOptions[Certification]{
		orderExpr: "display_order ASC, issue_date DESC",
		preloads:  []string{"Skills"},
		normalize: normalizeCertification,
	})
}

// CertificationSkills returns the repository operations for certification
// skill tags.
func (s *Service) CertificationSkills() Resource {
	return childResource[CertificationSkill, Certification](s, "certification_skills", "certification_id", resourceOptions[CertificationSkill]{})
}

// ContactInfos returns the repository operations for contact info entries.
func (s *Service) ContactInfos() Resource {
	return newResource[ContactInfo](s, "contact_info", resourceOptions[ContactInfo]{})
}

// SocialLinks returns the repository operations for social links.
func (s *Service) SocialLinks() Resource {
	return newResource[SocialLink](s, "social_links", resourceOptions[SocialLink]{})
}

// Educations returns the aggregate repository operations for education
// entries with their achievement bullets.
func (s *Service) Educations() Resource {
	return newResource[Education](s, "education", resourceOptions[Education]{
		orderExpr: "display_order ASC, start_date DESC",
		preloads:  []string{"Achievements"},
		normalize: normalizeEducation,
	})
}

// EducationAchievements returns the repository operations for education
// achievement bullets.
func (s *Service) EducationAchievements() Resource {
	return childResource[EducationAchievement, Education](s, "education_achievements", "education_id", resourceOptions[EducationAchievement]{})
}

// Projects returns the aggregate repository operations for projects with
// their technology and feature tags.
func (s *Service) Projects() Resource {
	return newResource[Project](s, "projects", resourceOptions[Project]{
		preloads:  []string{"Technologies", "Features"},
		normalize: normalizeProject,
	})
}

// ProjectTechnologies returns the repository operations for project
// technology tags.
func (s *Service) ProjectTechnologies() Resource {
	return childResource[ProjectTechnology, Project](s, "project_technologies", "project_id", resourceOptions[ProjectTechnology]{})
}

// ProjectFeatures returns the repository operations for project feature
// bullets.
func (s *Service) ProjectFeatures() Resource {
	return childResource[ProjectFeature, Project](s, "project_features", "project_id", resourceOptions[ProjectFeature]{})
}

// ResumeVersions returns the repository operations for resume versions.
func (s *Service) ResumeVersions() Resource {
	return newResource[ResumeVersion](s, "resume_versions", resourceOptions[ResumeVersion]{})
}

// SkillCategories returns the aggregate repository operations for skill
// categories with their skills.
func (s *Service) SkillCategories() Resource {
	return newResource[SkillCategory](s, "skill_categories", resourceOptions[SkillCategory]{
		preloads:  []string{"Skills"},
		normalize: normalizeSkillCategory,
	})
}

// Skills returns the repository operations for skills.
func (s *Service) Skills() Resource {
	return childResource[Skill, SkillCategory](s, "skills", "category_id", resourceOptions[Skill]{})
}

// Testimonials returns the repository operations for testimonials.
func (s *Service) Testimonials() Resource {
	return newResource[Testimonial](s, "testimonials", resourceOptions[Testimonial]{})
}
