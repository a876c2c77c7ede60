package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	UploadHandler  *UploadHandler
	ContactHandler *ContactHandler
	ResultHandler  *ResultHandler
	HealthHandler  *HealthHandler
}
