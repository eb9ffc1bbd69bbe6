package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/api/handlers"
	"github.com/haiminh-dev/ihk-case-api/internal/api/middleware"
	"github.com/haiminh-dev/ihk-case-api/internal/application"
	"github.com/haiminh-dev/ihk-case-api/internal/config/db"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.ObjectStore) {
	repos := repository.New(db.DB)
	services := application.New(repos, store)
	h := handlers.New(services, r)

	admin := string(user.RoleAdmin)
	staff := string(user.RoleStaff)

	r.POST("/login", h.User.Login)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.POST("", middleware.RequireRoles(admin), h.User.CreateUser)
			users.GET("", middleware.RequireRoles(admin), h.User.ListUsers)
		}

		cases := auth.Group("/cases")
		{
			cases.POST("", middleware.RequireRoles(admin), h.Case.CreateCase)
			cases.GET("", h.Case.ListCases)
			cases.GET("/:id", h.Case.GetCase)
			cases.PATCH("/:id", middleware.RequireRoles(admin, staff), h.Case.UpdateCase)
			cases.DELETE("/:id", middleware.RequireRoles(admin, staff), h.Case.DeleteCase)

			cases.GET("/:id/checklist", h.Case.GetChecklist)

			cases.POST("/:id/documents/:type/upload", middleware.RequireRoles(admin, staff), h.Document.UploadDefault)
			cases.GET("/:id/documents/:type/download", h.Document.DownloadDefault)

			cases.POST("/:id/custom-documents", middleware.RequireRoles(admin, staff), h.Document.AddCustom)
			cases.DELETE("/:id/custom-documents/:docId", middleware.RequireRoles(admin, staff), h.Document.DeleteCustom)
			cases.POST("/:id/custom-documents/:docId/upload", middleware.RequireRoles(admin, staff), h.Document.UploadCustom)
			cases.GET("/:id/custom-documents/:docId/download", h.Document.DownloadCustom)

			cases.GET("/:id/visa-profile", h.Profile.GetProfile)
			cases.PUT("/:id/visa-profile", middleware.RequireRoles(admin, staff), h.Profile.SaveProfile)
			cases.GET("/:id/visa-profile/so-yeu-ly-lich.docx", h.Profile.DownloadBiography)
		}
	}
}
