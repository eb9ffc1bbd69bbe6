package repository

import (
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
)

type CustomDocumentRepo interface {
	Create(doc *document.CustomDocument) error
	CreateMany(docs []document.CustomDocument) error
	ListByCase(caseID uint) ([]document.CustomDocument, error)
	ListTitlesByCase(caseID uint) ([]string, error)
	GetByID(id uint) (document.CustomDocument, error)
	Save(doc *document.CustomDocument) error
	Delete(id uint) error
	DeleteByCase(caseID uint) error
	WithTx(tx *gorm.DB) CustomDocumentRepo
}

type DBCustomDocumentRepo struct {
	db *gorm.DB
}

func NewCustomDocumentRepo(db *gorm.DB) *DBCustomDocumentRepo {
	return &DBCustomDocumentRepo{db: db}
}

func (r *DBCustomDocumentRepo) Create(doc *document.CustomDocument) error {
	return r.db.Create(doc).Error
}

func (r *DBCustomDocumentRepo) CreateMany(docs []document.CustomDocument) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.Create(&docs).Error
}

func (r *DBCustomDocumentRepo) ListByCase(caseID uint) ([]document.CustomDocument, error) {
	var docs []document.CustomDocument
	err := r.db.Where("case_id = ?", caseID).Order("id asc").Find(&docs).Error
	return docs, err
}

func (r *DBCustomDocumentRepo) ListTitlesByCase(caseID uint) ([]string, error) {
	var titles []string
	err := r.db.Model(&document.CustomDocument{}).
		Where("case_id = ?", caseID).
		Pluck("title", &titles).Error
	return titles, err
}

func (r *DBCustomDocumentRepo) GetByID(id uint) (document.CustomDocument, error) {
	var doc document.CustomDocument
	err := r.db.First(&doc, id).Error
	return doc, err
}

func (r *DBCustomDocumentRepo) Save(doc *document.CustomDocument) error {
	return r.db.Save(doc).Error
}

func (r *DBCustomDocumentRepo) Delete(id uint) error {
	return r.db.Delete(&document.CustomDocument{}, id).Error
}

func (r *DBCustomDocumentRepo) DeleteByCase(caseID uint) error {
	return r.db.Where("case_id = ?", caseID).Delete(&document.CustomDocument{}).Error
}

func (r *DBCustomDocumentRepo) WithTx(tx *gorm.DB) CustomDocumentRepo {
	if tx == nil {
		return r
	}
	return &DBCustomDocumentRepo{db: tx}
}
