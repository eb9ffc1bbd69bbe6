package repository

import (
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
)

type ProfileRepo interface {
	GetByCase(caseID uint) (profile.VisaProfile, error)
	// Upsert replaces the whole profile for a case, creating the row on
	// first save.
	Upsert(p *profile.VisaProfile) error
	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{db: db}
}

func (r *DBProfileRepo) GetByCase(caseID uint) (profile.VisaProfile, error) {
	var p profile.VisaProfile
	err := r.db.Where("case_id = ?", caseID).First(&p).Error
	return p, err
}

func (r *DBProfileRepo) Upsert(p *profile.VisaProfile) error {
	var existing profile.VisaProfile
	err := r.db.Where("case_id = ?", p.CaseID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(p).Error
		}
		return err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	// Save with Select("*") so cleared fields are written back as NULL
	return r.db.Model(&existing).Select("*").Omit("id", "case_id", "created_at").Updates(p).Error
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	if tx == nil {
		return r
	}
	return &DBProfileRepo{db: tx}
}
