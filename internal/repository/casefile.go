package repository

import (
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
)

type CaseRepo interface {
	Create(c *casefile.Case) error
	GetByID(id uint) (casefile.Case, error)
	List() ([]casefile.Case, error)
	Save(c *casefile.Case) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) CaseRepo
}

type DBCaseRepo struct {
	db *gorm.DB
}

func NewCaseRepo(db *gorm.DB) *DBCaseRepo {
	return &DBCaseRepo{db: db}
}

func (r *DBCaseRepo) Create(c *casefile.Case) error {
	return r.db.Create(c).Error
}

func (r *DBCaseRepo) GetByID(id uint) (casefile.Case, error) {
	var c casefile.Case
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBCaseRepo) List() ([]casefile.Case, error) {
	var cases []casefile.Case
	err := r.db.Order("id desc").Find(&cases).Error
	return cases, err
}

func (r *DBCaseRepo) Save(c *casefile.Case) error {
	return r.db.Save(c).Error
}

func (r *DBCaseRepo) Delete(id uint) error {
	return r.db.Delete(&casefile.Case{}, id).Error
}

func (r *DBCaseRepo) WithTx(tx *gorm.DB) CaseRepo {
	if tx == nil {
		return r
	}
	return &DBCaseRepo{db: tx}
}
