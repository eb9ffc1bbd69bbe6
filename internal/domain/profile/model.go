package profile

import (
	"time"

	"gorm.io/datatypes"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "DOC_THAN"
	MaritalMarried  MaritalStatus = "KET_HON"
	MaritalDivorced MaritalStatus = "LY_HON"
)

// VisaProfile is the long-form biographical questionnaire, one row per case.
// The five history collections are stored wholesale as JSON; an empty array
// is collapsed to NULL on save.
type VisaProfile struct {
	ID     uint `json:"id" gorm:"primaryKey;autoIncrement"`
	CaseID uint `json:"caseId" gorm:"uniqueIndex;not null"`

	Phone       *string `json:"phone" gorm:"size:50"`
	Email       *string `json:"email" gorm:"size:255"`
	HomeAddress *string `json:"homeAddress" gorm:"size:512"`

	HeightCm      *int          `json:"heightCm"`
	EyeColor      *string       `json:"eyeColor" gorm:"size:50"`
	Religion      *string       `json:"religion" gorm:"size:100"`
	MaritalStatus MaritalStatus `json:"maritalStatus" gorm:"size:20;default:'DOC_THAN'"`
	MarriageDate  *time.Time    `json:"marriageDate"`
	DivorceDate   *time.Time    `json:"divorceDate"`

	CurrentCompany *string `json:"currentCompany" gorm:"size:255"`
	CompanyAddress *string `json:"companyAddress" gorm:"size:512"`

	GraduatedSchool *string `json:"graduatedSchool" gorm:"size:255"`
	Major           *string `json:"major" gorm:"size:255"`

	BigAssets *string `json:"bigAssets" gorm:"type:text"`

	FamilyMembers    datatypes.JSON `json:"familyMembers"`
	FamilyJobsIncome datatypes.JSON `json:"familyJobsIncome"`
	TravelHistory    datatypes.JSON `json:"travelHistory"`
	EducationHistory datatypes.JSON `json:"educationHistory"`
	WorkHistory      datatypes.JSON `json:"workHistory"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (VisaProfile) TableName() string {
	return "visa_profiles"
}
