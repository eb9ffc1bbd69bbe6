package document

import "time"

// DocType enumerates the slots of the fixed IHK checklist.
type DocType string

const (
	TypeApplicationForm     DocType = "APPLICATION_FORM"
	TypeDiplomaAndSubjects  DocType = "DIPLOMA_AND_SUBJECTS"
	TypeIdentityProof       DocType = "IDENTITY_PROOF"
	TypeCV                  DocType = "CV"
	TypeIntentToWorkProof   DocType = "INTENT_TO_WORK_PROOF"
	TypeProofWorkExperience DocType = "PROOF_WORK_EXPERIENCE"
	TypeOtherQualifications DocType = "OTHER_QUALIFICATIONS"
	TypeTrainingCurriculum  DocType = "TRAINING_CURRICULUM"
)

// CaseDocument is one checklist slot for a case; at most one row per
// (case, type), enforced by the composite unique index.
type CaseDocument struct {
	ID                  uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	CaseID              uint       `json:"caseId" gorm:"uniqueIndex:idx_case_doc_type;not null"`
	Type                DocType    `json:"type" gorm:"size:40;uniqueIndex:idx_case_doc_type;not null"`
	Required            bool       `json:"required"`
	TranslationRequired bool       `json:"translationRequired"`
	FileName            *string    `json:"fileName" gorm:"size:255"`
	StorageKey          *string    `json:"filePath" gorm:"size:512;column:file_path"`
	UploadedBy          *uint      `json:"uploadedBy"`
	UploadedAt          *time.Time `json:"uploadedAt"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (CaseDocument) TableName() string {
	return "case_documents"
}

// CustomDocument is a freeform, user-named checklist slot. Duplicate titles
// are allowed; only the seeded defaults are deduplicated.
type CustomDocument struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	CaseID     uint       `json:"caseId" gorm:"index;not null"`
	Title      string     `json:"title" gorm:"size:255;not null"`
	Required   bool       `json:"required"`
	FileName   *string    `json:"fileName" gorm:"size:255"`
	StorageKey *string    `json:"filePath" gorm:"size:512;column:file_path"`
	UploadedBy *uint      `json:"uploadedBy"`
	UploadedAt *time.Time `json:"uploadedAt"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (CustomDocument) TableName() string {
	return "custom_documents"
}
