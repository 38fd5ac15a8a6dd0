// Package adminapi implements the administrator console API under /api/admin.
// Every route requires an authenticated session with the admin role.
package adminapi

func InitRouter() {
	registerInstallationRoutes()
	registerProductRoutes()
	registerTestimonialRoutes()
	registerUserRoutes()
	registerSubmissionRoutes()
	registerSubsidyRoutes()
	registerSettingRoutes()
}
