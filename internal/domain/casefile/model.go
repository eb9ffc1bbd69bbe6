package casefile

import "time"

// VisaStatus tracks how far along the visa process a case is.
type VisaStatus string

const (
	StatusHoanTat      VisaStatus = "HOAN_TAT"        // completed
	StatusVanThieuHoSo VisaStatus = "VAN_THIEU_HO_SO" // still missing documents
	StatusDaLanTay     VisaStatus = "DA_LAN_TAY"      // fingerprints taken
	StatusDaCoVisum    VisaStatus = "DA_CO_VISUM"     // visa issued
	StatusChuaDu8Thang VisaStatus = "CHUA_DU_8_THANG" // under 8 months
)

// Case is one applicant's record and the root of all owned documents.
type Case struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName   string     `json:"fullName" gorm:"size:255;not null"`
	Dob        *time.Time `json:"dob"`
	JobTitle   *string    `json:"jobTitle" gorm:"size:255"`
	Phone      *string    `json:"phone" gorm:"size:50"`
	City       *string    `json:"city" gorm:"size:255"`
	VisaStatus VisaStatus `json:"visaStatus" gorm:"size:30;default:'VAN_THIEU_HO_SO'"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Case) TableName() string {
	return "cases"
}
