package server

// Field schemas for every content resource. The JSON key is the column
// name; required fields are enforced at creation, all text passes through
// sanitization before storage.

var aboutStatRules = []fieldRule{
	{name: "label", kind: fieldText, required: true, maxLength: 200},
	{name: "value", kind: fieldText, required: true, maxLength: 100},
	{name: "icon", kind: fieldText, maxLength: 100},
	{name: "gradient", kind: fieldText, maxLength: 200},
}

var personalityTraitRules = []fieldRule{
	{name: "label", kind: fieldText, required: true, maxLength: 200},
	{name: "icon", kind: fieldText, maxLength: 100},
	{name: "color", kind: fieldText, maxLength: 100},
}

var achievementRules = []fieldRule{
	{name: "title", kind: fieldText, required: true, maxLength: 300},
	{name: "organization", kind: fieldText, maxLength: 300},
	{name: "year", kind: fieldInt},
	{name: "description", kind: fieldText, maxLength: 2000},
}

var recognitionRules = []fieldRule{
	{name: "title", kind: fieldText, required: true, maxLength: 300},
	{name: "event", kind: fieldText, maxLength: 300},
	{name: "description", kind: fieldText, maxLength: 2000},
	{name: "image_url", kind: fieldURL, label: "Image URL"},
}

var certificationRules = []fieldRule{
	{name: "name", kind: fieldText, required: true, maxLength: 300},
	{name: "issuer", kind: fieldText, maxLength: 300},
	{name: "issue_date", kind: fieldText, maxLength: 20},
	{name: "expiry_date", kind: fieldText, maxLength: 20},
	{name: "credential_id", kind: fieldText, maxLength: 200, label: "Credential ID"},
	{name: "credential_url", kind: fieldURL, label: "Credential URL"},
}

var certificationSkillRules = []fieldRule{
	{name: "certification_id", kind: fieldUUID, required: true, label: "Certification ID"},
	{name: "skill", kind: fieldText, required: true, maxLength: 200},
}

var contactInfoRules = []fieldRule{
	{name: "type", kind: fieldText, required: true, maxLength: 100},
	{name: "label", kind: fieldText, maxLength: 200},
	{name: "value", kind: fieldText, required: true, maxLength: 500},
	{name: "icon", kind: fieldText, maxLength: 100},
}

var socialLinkRules = []fieldRule{
	{name: "platform", kind: fieldText, required: true, maxLength: 100},
	{name: "url", kind: fieldURL, required: true, label: "URL"},
	{name: "icon", kind: fieldText, maxLength: 100},
}

var educationRules = []fieldRule{
	{name: "degree", kind: fieldText, required: true, maxLength: 300},
	{name: "institution", kind: fieldText, required: true, maxLength: 300},
	{name: "field_of_study", kind: fieldText, maxLength: 300},
	{name: "start_date", kind: fieldText, maxLength: 20},
	{name: "end_date", kind: fieldText, maxLength: 20},
	{name: "is_current", kind: fieldBool},
	{name: "description", kind: fieldText, maxLength: 2000},
}

var educationAchievementRules = []fieldRule{
	{name: "education_id", kind: fieldUUID, required: true, label: "Education ID"},
	{name: "text", kind: fieldText, required: true, maxLength: 500},
}

var projectRules = []fieldRule{
	{name: "title", kind: fieldText, required: true, maxLength: 300},
	{name: "description", kind: fieldText, maxLength: 2000},
	{name: "status", kind: fieldText, maxLength: 50},
	{name: "live_url", kind: fieldURL, label: "Live URL"},
	{name: "github_url", kind: fieldURL, label: "GitHub URL"},
	{name: "image_url", kind: fieldURL, label: "Image URL"},
}

var projectTechnologyRules = []fieldRule{
	{name: "project_id", kind: fieldUUID, required: true, label: "Project ID"},
	{name: "technology", kind: fieldText, required: true, maxLength: 200},
}

var projectFeatureRules = []fieldRule{
	{name: "project_id", kind: fieldUUID, required: true, label: "Project ID"},
	{name: "feature", kind: fieldText, required: true, maxLength: 500},
}

var resumeVersionRules = []fieldRule{
	{name: "name", kind: fieldText, required: true, maxLength: 300},
	{name: "pages", kind: fieldInt},
	{name: "size", kind: fieldText, maxLength: 50},
	{name: "file_url", kind: fieldURL, label: "File URL"},
	{name: "last_updated", kind: fieldText, maxLength: 20},
}

var skillCategoryRules = []fieldRule{
	{name: "title", kind: fieldText, required: true, maxLength: 200},
}

var skillRules = []fieldRule{
	{name: "category_id", kind: fieldUUID, required: true, label: "Category ID"},
	{name: "name", kind: fieldText, required: true, maxLength: 200},
}

var testimonialRules = []fieldRule{
	{name: "name", kind: fieldText, required: true, maxLength: 200},
	{name: "role", kind: fieldText, maxLength: 200},
	{name: "company", kind: fieldText, maxLength: 200},
	{name: "content", kind: fieldText, required: true, maxLength: 2000},
	{name: "initial", kind: fieldText, maxLength: 10},
	{name: "image_url", kind: fieldURL, label: "Image URL"},
}

var profileRules = []fieldRule{
	{name: "name", kind: fieldText, required: true, maxLength: 200},
	{name: "title", kind: fieldText, maxLength: 200},
	{name: "bio", kind: fieldText, maxLength: 2000},
	{name: "email", kind: fieldEmail},
	{name: "phone", kind: fieldText, maxLength: 50},
	{name: "location", kind: fieldText, maxLength: 200},
	{name: "avatar_url", kind: fieldURL, label: "Avatar URL"},
	{name: "github_url", kind: fieldURL, label: "GitHub URL"},
	{name: "linkedin_url", kind: fieldURL, label: "LinkedIn URL"},
	{name: "twitter_url", kind: fieldURL, label: "Twitter URL"},
}
