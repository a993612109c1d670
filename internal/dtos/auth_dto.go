package dtos

type CompanySignupRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`

	// Optional profile fields
	WebsiteURL  string `json:"website_url"`
	CompanyType string `json:"company_type"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

type StudentSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	Phone      string  `json:"phone"`
	College    string  `json:"college"`
	GPA        float64 `json:"gpa" binding:"omitempty,gte=0,lte=10"`
	GradYear   int     `json:"grad_year"`
	ResumeLink string  `json:"resume_link"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CompanyProfilePatch is the allow-list of company fields a profile update
// may touch. Pointer fields distinguish "not sent" from "set to empty"; any
// key outside this list is rejected at bind time. Name and email are
// identity and stay immutable here.
type CompanyProfilePatch struct {
	WebsiteURL  *string `json:"website_url"`
	CompanyType *string `json:"company_type"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
}

// CompanyDirectoryEntry is the public directory row: profile plus how many
// postings the company has made.
type CompanyDirectoryEntry struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	WebsiteURL  string `json:"website_url"`
	CompanyType string `json:"company_type"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	JobCount    int64  `json:"job_count"`
}
