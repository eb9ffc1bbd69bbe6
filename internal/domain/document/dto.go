package document

type AddCustomDocumentInput struct {
	Title    string `json:"title" binding:"required"`
	Required bool   `json:"required"`
}

// ChecklistView is the combined checklist response for one case.
type ChecklistView struct {
	CaseID          uint             `json:"caseId"`
	MissingRequired int              `json:"missingRequired"`
	Documents       []CaseDocument   `json:"documents"`
	CustomDocuments []CustomDocument `json:"customDocuments"`
}

// UploadResult is returned after a default-document upload.
type UploadResult struct {
	Message         string       `json:"message"`
	Document        CaseDocument `json:"document"`
	MissingRequired int          `json:"missingRequired"`
}

// FileRef points at an uploaded blob in the object store.
type FileRef struct {
	StorageKey string  `json:"filePath"`
	FileName   *string `json:"fileName"`
}
