package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
)

type CaseDocumentRepo interface {
	CountByCase(caseID uint) (int64, error)
	CreateMany(docs []document.CaseDocument) error
	ListByCase(caseID uint) ([]document.CaseDocument, error)
	GetByCaseAndType(caseID uint, docType document.DocType) (document.CaseDocument, error)
	UpsertUpload(doc *document.CaseDocument) (document.CaseDocument, error)
	DeleteByCase(caseID uint) error
	WithTx(tx *gorm.DB) CaseDocumentRepo
}

type DBCaseDocumentRepo struct {
	db *gorm.DB
}

func NewCaseDocumentRepo(db *gorm.DB) *DBCaseDocumentRepo {
	return &DBCaseDocumentRepo{db: db}
}

func (r *DBCaseDocumentRepo) CountByCase(caseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&document.CaseDocument{}).Where("case_id = ?", caseID).Count(&count).Error
	return count, err
}

func (r *DBCaseDocumentRepo) CreateMany(docs []document.CaseDocument) error {
	if len(docs) == 0 {
		return nil
	}
	// skip duplicates; the unique (case_id, type) index closes the race with
	// a concurrent backfill
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "case_id"}, {Name: "type"}},
		DoNothing: true,
	}).Create(&docs).Error
}

func (r *DBCaseDocumentRepo) ListByCase(caseID uint) ([]document.CaseDocument, error) {
	var docs []document.CaseDocument
	err := r.db.Where("case_id = ?", caseID).Order("id asc").Find(&docs).Error
	return docs, err
}

func (r *DBCaseDocumentRepo) GetByCaseAndType(caseID uint, docType document.DocType) (document.CaseDocument, error) {
	var doc document.CaseDocument
	err := r.db.Where("case_id = ? AND type = ?", caseID, docType).First(&doc).Error
	return doc, err
}

// UpsertUpload writes upload metadata keyed by (case_id, type). On first
// upload the row is created with the payload's Required fallback; on repeat
// upload only the file columns are replaced.
func (r *DBCaseDocumentRepo) UpsertUpload(doc *document.CaseDocument) (document.CaseDocument, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "case_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_name", "file_path", "uploaded_by", "uploaded_at", "updated_at"}),
	}).Create(doc).Error
	if err != nil {
		return document.CaseDocument{}, err
	}
	return r.GetByCaseAndType(doc.CaseID, doc.Type)
}

func (r *DBCaseDocumentRepo) DeleteByCase(caseID uint) error {
	return r.db.Where("case_id = ?", caseID).Delete(&document.CaseDocument{}).Error
}

func (r *DBCaseDocumentRepo) WithTx(tx *gorm.DB) CaseDocumentRepo {
	if tx == nil {
		return r
	}
	return &DBCaseDocumentRepo{db: tx}
}
