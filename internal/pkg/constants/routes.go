package constants

// Static route constants
const (
	HomeRoute      = "/"
	AboutRoute     = "/about"
	DashboardRoute = "/dashboard"
	// Data path without the /api prefix, registered inside the api group
	APIDataRoute = "/data"
)
