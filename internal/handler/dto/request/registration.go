package request

type RegisterProfileRequest struct {
	FullName    string   `json:"full_name"`
	Position    string   `json:"position"`
	CompanyName string   `json:"company_name"`
	Bio         string   `json:"bio"`
	Interests   []string `json:"interests"`
	LinkedinURL string   `json:"linkedin_url" binding:"omitempty,url"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone"`
	PhotoURL    *string  `json:"photo_url,omitempty" binding:"omitempty,url"`

	// Carry-over registration: reuse an existing profile from another
	// event instead of filling the fields above.
	UseExistingProfile bool   `json:"use_existing_profile"`
	ExistingEmail      string `json:"existing_email" binding:"omitempty,email"`
	ExistingAccessCode string `json:"existing_access_code"`
}

type CheckExistingRequest struct {
	Email      string `json:"email" binding:"required,email"`
	AccessCode string `json:"access_code" binding:"required"`
}

type VerifyRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}
