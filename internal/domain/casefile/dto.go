package casefile

type CreateCaseInput struct {
	FullName   string  `json:"fullName" binding:"required"`
	Dob        *string `json:"dob"`
	JobTitle   *string `json:"jobTitle"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	VisaStatus *string `json:"visaStatus"`
}

// UpdateCaseInput carries a partial PATCH payload. Nil means "leave as is".
type UpdateCaseInput struct {
	FullName   *string `json:"fullName"`
	Dob        *string `json:"dob"`
	JobTitle   *string `json:"jobTitle"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	VisaStatus *string `json:"visaStatus"`
}
