package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Case      CaseRepo
	Document  CaseDocumentRepo
	CustomDoc CustomDocumentRepo
	Profile   ProfileRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Case:      NewCaseRepo(db),
		Document:  NewCaseDocumentRepo(db),
		CustomDoc: NewCustomDocumentRepo(db),
		Profile:   NewProfileRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Case:      r.Case.WithTx(tx),
		Document:  r.Document.WithTx(tx),
		CustomDoc: r.CustomDoc.WithTx(tx),
		Profile:   r.Profile.WithTx(tx),
		db:        tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
