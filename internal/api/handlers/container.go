package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/application"
)

type Handlers struct {
	User     *UserHandler
	Case     *CaseHandler
	Document *DocumentHandler
	Profile  *ProfileHandler
	Router   *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:     NewUserHandler(svc.User),
		Case:     NewCaseHandler(svc.Case, svc.Document),
		Document: NewDocumentHandler(svc.Document),
		Profile:  NewProfileHandler(svc.Case, svc.Profile),
		Router:   router,
	}
}
