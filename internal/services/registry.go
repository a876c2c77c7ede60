package services

import "portfolio_backend/internal/notify"

// ServiceContainer bundles the services the handler layer depends on.
type ServiceContainer struct {
	UploadService  *UploadService
	ContactService *ContactService
	ResultService  *ResultService
	Notifier       *notify.Notifier
}
