package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
)

type UserRepo interface {
	GetByEmail(email string) (user.User, error)
	GetByID(id uint) (user.User, error)
	List() ([]user.User, error)
	Save(u *user.User) error
	UpsertByEmail(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) List() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("id asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

// UpsertByEmail keeps the bootstrap seed idempotent.
func (r *DBUserRepo) UpsertByEmail(u *user.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
