package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"SchoolServer/internal/admission"
	"SchoolServer/internal/auth"
	"SchoolServer/internal/class"
	"SchoolServer/internal/config"
	"SchoolServer/internal/dashboard"
	"SchoolServer/internal/gallery"
	"SchoolServer/internal/message"
	"SchoolServer/internal/notice"
	"SchoolServer/internal/settings"
	"SchoolServer/internal/student"
	"SchoolServer/internal/teacher"
	"SchoolServer/pkg/middleware"
)

var Module = fx.Module("school",
	fx.Provide(
		config.NewLogger,
		config.NewMongoDBConfig,
		config.NewMongoDatabase,
		config.NewMailer,
		config.NewFileStore,
		config.NewSiteConfig,

		auth.NewTokenService,
		auth.NewUserRepository,
		func(r *auth.UserRepository) auth.Repository { return r },
		auth.NewUserService,
		auth.NewAuthHandler,

		notice.NewNoticeRepository,
		func(r *notice.NoticeRepository) notice.Repository { return r },
		notice.NewNoticeService,
		notice.NewNoticeHandler,

		class.NewClassRepository,
		class.NewClassService,
		class.NewClassHandler,

		student.NewStudentRepository,
		student.NewStudentService,
		student.NewStudentHandler,

		teacher.NewTeacherRepository,
		teacher.NewTeacherService,
		teacher.NewTeacherHandler,

		admission.NewAdmissionRepository,
		admission.NewAdmissionService,
		admission.NewAdmissionHandler,

		message.NewMessageRepository,
		message.NewMessageService,
		message.NewMessageHandler,

		gallery.NewGalleryRepository,
		gallery.NewGalleryService,
		gallery.NewGalleryHandler,

		settings.NewSettingsRepository,
		settings.NewSettingsService,
		settings.NewSettingsHandler,

		dashboard.NewDashboardService,
		dashboard.NewDashboardHandler,

		middleware.NewJWT,
		middleware.NewRBAC,

		NewEchoServer,
	),
	fx.Invoke(RegisterRoutes),
)

func RegisterRoutes(
	e *echo.Echo,
	jwt *middleware.JWT,
	rbac *middleware.RBAC,
	authHandler *auth.AuthHandler,
	noticeHandler *notice.NoticeHandler,
	classHandler *class.ClassHandler,
	studentHandler *student.StudentHandler,
	teacherHandler *teacher.TeacherHandler,
	admissionHandler *admission.AdmissionHandler,
	messageHandler *message.MessageHandler,
	galleryHandler *gallery.GalleryHandler,
	settingsHandler *settings.SettingsHandler,
	dashboardHandler *dashboard.DashboardHandler,
) {
	api := e.Group("/api")

	// Public endpoints: auth entry points and the open site surfaces.
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.POST("/forgotpassword", authHandler.ForgotPassword)
	authGroup.PUT("/resetpassword/:token", authHandler.ResetPassword)

	api.POST("/admissions", admissionHandler.Submit)
	api.POST("/messages", messageHandler.Submit)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/setting", settingsHandler.List)
	api.GET("/classes/public", classHandler.ListPublic)

	// Everything below runs through both gates: authentication, then
	// the role policy table.
	protected := api.Group("", jwt.Require, rbac.Enforce)

	protected.GET("/users", authHandler.ListUsers)
	protected.GET("/users/profile", authHandler.Profile)
	protected.PUT("/users/update-profile", authHandler.UpdateProfile)
	protected.PUT("/users/change-password", authHandler.ChangePassword)
	protected.PUT("/users/:id", authHandler.AdminUpdateUser)
	protected.DELETE("/users/:id", authHandler.AdminDeleteUser)

	protected.GET("/notices", noticeHandler.List)
	protected.POST("/notices", noticeHandler.Create)
	protected.PUT("/notices/:id", noticeHandler.Update)
	protected.DELETE("/notices/:id", noticeHandler.Delete)
	protected.POST("/notices/:id/read", noticeHandler.MarkRead)
	protected.POST("/notices/:id/unread", noticeHandler.MarkUnread)
	protected.POST("/notices/read/all", noticeHandler.MarkAllRead)

	protected.POST("/classes", classHandler.Create)
	protected.GET("/classes", classHandler.ListAll)
	protected.GET("/classes/:id", classHandler.Get)
	protected.PUT("/classes/:id", classHandler.Update)
	protected.DELETE("/classes/:id", classHandler.Delete)

	protected.POST("/students", studentHandler.Create)
	protected.GET("/students", studentHandler.List)
	protected.GET("/students/:id", studentHandler.Get)
	protected.PUT("/students/:id", studentHandler.Update)
	protected.DELETE("/students/:id", studentHandler.Delete)

	protected.POST("/teachers", teacherHandler.Create)
	protected.GET("/teachers", teacherHandler.List)
	protected.GET("/teachers/:id", teacherHandler.Get)
	protected.PUT("/teachers/:id", teacherHandler.Update)
	protected.DELETE("/teachers/:id", teacherHandler.Delete)

	protected.GET("/admissions", admissionHandler.List)
	protected.PUT("/admissions/:id", admissionHandler.Update)
	protected.DELETE("/admissions/:id", admissionHandler.Delete)

	protected.GET("/messages", messageHandler.List)
	protected.PATCH("/messages/:id/toggle", messageHandler.ToggleRead)
	protected.DELETE("/messages/:id", messageHandler.Delete)

	protected.POST("/gallery", galleryHandler.Create)
	protected.PUT("/gallery/:id", galleryHandler.Update)
	protected.DELETE("/gallery/:id", galleryHandler.Delete)

	protected.POST("/setting", settingsHandler.Create)
	protected.PUT("/setting/:id", settingsHandler.Update)
	protected.DELETE("/setting/:id", settingsHandler.Delete)

	protected.GET("/dashboard/stats", dashboardHandler.Stats)
}
