package content

import "time"

// Profile is the single owner record backing the site header and about page.
type Profile struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string    `gorm:"column:name;size:200;not null" json:"name"`
	Title       string    `gorm:"column:title;size:200" json:"title"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	Email       string    `gorm:"column:email;size:254" json:"email"`
	Phone       string    `gorm:"column:phone;size:50" json:"phone"`
	Location    string    `gorm:"column:location;size:200" json:"location"`
	AvatarURL   string    `gorm:"column:avatar_url;size:2048" json:"avatar_url"`
	GithubURL   string    `gorm:"column:github_url;size:2048" json:"github_url"`
	LinkedinURL string    `gorm:"column:linkedin_url;size:2048" json:"linkedin_url"`
	TwitterURL  string    `gorm:"column:twitter_url;size:2048" json:"twitter_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// AboutStat is a headline figure rendered on the about page.
type AboutStat struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Label        string    `gorm:"column:label;size:200;not null" json:"label"`
	Value        string    `gorm:"column:value;size:100;not null" json:"value"`
	Icon         string    `gorm:"column:icon;size:100" json:"icon"`
	Gradient     string    `gorm:"column:gradient;size:200" json:"gradient"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AboutStat) TableName() string { return "about_stats" }

// PersonalityTrait is a short descriptor rendered on the about page.
type PersonalityTrait struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Label        string    `gorm:"column:label;size:200;not null" json:"label"`
	Icon         string    `gorm:"column:icon;size:100" json:"icon"`
	Color        string    `gorm:"column:color;size:100" json:"color"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PersonalityTrait) TableName() string { return "personality_traits" }

// Achievement records an award or milestone; ties on display order break by
// the most recent year first.
type Achievement struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title        string    `gorm:"column:title;size:300;not null" json:"title"`
	Organization string    `gorm:"column:organization;size:300" json:"organization"`
	Year         int       `gorm:"column:year" json:"year"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Achievement) TableName() string { return "achievements" }

// Recognition records press or community recognition with an optional image.
type Recognition struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title        string    `gorm:"column:title;size:300;not null" json:"title"`
	Event        string    `gorm:"column:event;size:300" json:"event"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	ImageURL     string    `gorm:"column:image_url;size:2048" json:"image_url"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Recognition) TableName() string { return "recognitions" }

// Certification is a credential with its skill tags attached; ties on
// display order break by the most recent issue date first.
type Certification struct {
	ID            string               `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name          string               `gorm:"column:name;size:300;not null" json:"name"`
	Issuer        string               `gorm:"column:issuer;size:300" json:"issuer"`
	IssueDate     string               `gorm:"column:issue_date;size:20" json:"issue_date"`
	ExpiryDate    string               `gorm:"column:expiry_date;size:20" json:"expiry_date"`
	CredentialID  string               `gorm:"column:credential_id;size:200" json:"credential_id"`
	CredentialURL string               `gorm:"column:credential_url;size:2048" json:"credential_url"`
	DisplayOrder  int                  `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Skills        []CertificationSkill `gorm:"foreignKey:CertificationID;references:ID;constraint:OnDelete:CASCADE" json:"skills"`
}

func (Certification) TableName() string { return "certifications" }

// CertificationSkill is a skill tag attached to one certification.
type CertificationSkill struct {
	ID              string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CertificationID string    `gorm:"column:certification_id;size:36;not null;index" json:"certification_id"`
	Skill           string    `gorm:"column:skill;size:200;not null" json:"skill"`
	DisplayOrder    int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CertificationSkill) TableName() string { return "certification_skills" }

// ContactInfo is a single way of reaching the owner (email, phone, ...).
type ContactInfo struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Type         string    `gorm:"column:type;size:100;not null" json:"type"`
	Label        string    `gorm:"column:label;size:200" json:"label"`
	Value        string    `gorm:"column:value;size:500;not null" json:"value"`
	Icon         string    `gorm:"column:icon;size:100" json:"icon"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactInfo) TableName() string { return "contact_info" }

// SocialLink points to one of the owner's external profiles.
type SocialLink struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Platform     string    `gorm:"column:platform;size:100;not null" json:"platform"`
	URL          string    `gorm:"column:url;size:2048;not null" json:"url"`
	Icon         string    `gorm:"column:icon;size:100" json:"icon"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SocialLink) TableName() string { return "social_links" }

// Education is a study period with its achievement bullets attached; ties
// on display order break by the most recent start date first.
type Education struct {
	ID           string                 `gorm:"column:id;primaryKey;size:36" json:"id"`
	Degree       string                 `gorm:"column:degree;size:300;not null" json:"degree"`
	Institution  string                 `gorm:"column:institution;size:300;not null" json:"institution"`
	FieldOfStudy string                 `gorm:"column:field_of_study;size:300" json:"field_of_study"`
	StartDate    string                 `gorm:"column:start_date;size:20" json:"start_date"`
	EndDate      string                 `gorm:"column:end_date;size:20" json:"end_date"`
	IsCurrent    bool                   `gorm:"column:is_current;not null;default:false" json:"is_current"`
	Description  string                 `gorm:"column:description;type:text" json:"description"`
	DisplayOrder int                    `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Achievements []EducationAchievement `gorm:"foreignKey:EducationID;references:ID;constraint:OnDelete:CASCADE" json:"achievements"`
}

func (Education) TableName() string { return "education" }

// EducationAchievement is one bullet under an education entry.
type EducationAchievement struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	EducationID  string    `gorm:"column:education_id;size:36;not null;index" json:"education_id"`
	Text         string    `gorm:"column:text;size:500;not null" json:"text"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EducationAchievement) TableName() string { return "education_achievements" }

// Project is a portfolio entry with its technology and feature tags.
type Project struct {
	ID           string              `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title        string              `gorm:"column:title;size:300;not null" json:"title"`
	Description  string              `gorm:"column:description;type:text" json:"description"`
	Status       string              `gorm:"column:status;size:50" json:"status"`
	LiveURL      string              `gorm:"column:live_url;size:2048" json:"live_url"`
	GithubURL    string              `gorm:"column:github_url;size:2048" json:"github_url"`
	ImageURL     string              `gorm:"column:image_url;size:2048" json:"image_url"`
	DisplayOrder int                 `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Technologies []ProjectTechnology `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"technologies"`
	Features     []ProjectFeature    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"features"`
}

func (Project) TableName() string { return "projects" }

// ProjectTechnology is one technology tag on a project.
type ProjectTechnology struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	ProjectID    string    `gorm:"column:project_id;size:36;not null;index" json:"project_id"`
	Technology   string    `gorm:"column:technology;size:200;not null" json:"technology"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProjectTechnology) TableName() string { return "project_technologies" }

// ProjectFeature is one feature bullet on a project.
type ProjectFeature struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	ProjectID    string    `gorm:"column:project_id;size:36;not null;index" json:"project_id"`
	Feature      string    `gorm:"column:feature;size:500;not null" json:"feature"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProjectFeature) TableName() string { return "project_features" }

// ResumeVersion is one downloadable resume file.
type ResumeVersion struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name         string    `gorm:"column:name;size:300;not null" json:"name"`
	Pages        int       `gorm:"column:pages" json:"pages"`
	Size         string    `gorm:"column:size;size:50" json:"size"`
	FileURL      string    `gorm:"column:file_url;size:2048" json:"file_url"`
	LastUpdated  string    `gorm:"column:last_updated;size:20" json:"last_updated"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ResumeVersion) TableName() string { return "resume_versions" }

// SkillCategory groups skills under one heading.
type SkillCategory struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title        string    `gorm:"column:title;size:200;not null" json:"title"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Skills       []Skill   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE" json:"skills"`
}

func (SkillCategory) TableName() string { return "skill_categories" }

// Skill is one named skill inside a category.
type Skill struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CategoryID   string    `gorm:"column:category_id;size:36;not null;index" json:"category_id"`
	Name         string    `gorm:"column:name;size:200;not null" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }

// Testimonial is a quote displayed on the site.
type Testimonial struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name         string    `gorm:"column:name;size:200;not null" json:"name"`
	Role         string    `gorm:"column:role;size:200" json:"role"`
	Company      string    `gorm:"column:company;size:200" json:"company"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	Initial      string    `gorm:"column:initial;size:10" json:"initial"`
	ImageURL     string    `gorm:"column:image_url;size:2048" json:"image_url"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }

// ContactMessage is a submission from the public contact form. It is
// create-only through the public API and ordered by submission time.
type ContactMessage struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:200;not null" json:"name"`
	Email     string    `gorm:"column:email;size:254;not null" json:"email"`
	Subject   string    `gorm:"column:subject;size:300;not null" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// Models lists every content model for schema migration.
func Models() []any {
	return []any{
		&Profile{},
		&AboutStat{},
		&PersonalityTrait{},
		&Achievement{},
		&Recognition{},
		&Certification{},
		&CertificationSkill{},
		&ContactInfo{},
		&SocialLink{},
		&Education{},
		&EducationAchievement{},
		&Project{},
		&ProjectTechnology{},
		&ProjectFeature{},
		&ResumeVersion{},
		&SkillCategory{},
		&Skill{},
		&Testimonial{},
		&ContactMessage{},
	}
}
