package request

type UpdateProfileRequest struct {
	AccessCode string `json:"access_code" binding:"required"`

	// Pointer fields are applied only when present, so a PATCH with a
	// subset of fields leaves the rest untouched.
	FullName       *string   `json:"full_name,omitempty"`
	Position       *string   `json:"position,omitempty"`
	CompanyName    *string   `json:"company_name,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Interests      *[]string `json:"interests,omitempty"`
	LinkedinURL    *string   `json:"linkedin_url,omitempty" binding:"omitempty,url"`
	Phone          *string   `json:"phone,omitempty"`
	PhotoURL       *string   `json:"photo_url,omitempty" binding:"omitempty,url"`
	AvailableSlots *[]string `json:"available_slots,omitempty"`
}
