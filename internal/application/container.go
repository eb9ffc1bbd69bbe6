package application

import (
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/storage"
)

type Services struct {
	User     *UserService
	Case     *CaseService
	Document *DocumentService
	Profile  *ProfileService
}

func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	docs := NewDocumentService(repos, store)
	return &Services{
		User:     NewUserService(repos),
		Case:     NewCaseService(repos, store, docs),
		Document: docs,
		Profile:  NewProfileService(repos),
	}
}
