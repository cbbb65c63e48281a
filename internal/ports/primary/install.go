package primary

import "context"

// InstallService defines the primary port for persisting the default type.
type InstallService interface {
	// Install publishes or updates the settings document.
	Install(ctx context.Context, req InstallRequest) (*InstallResponse, error)
}

// InstallRequest contains parameters for an install.
type InstallRequest struct {
	ProjectRoot string
	DefaultType string
}

// InstallResponse contains the result of an install.
type InstallResponse struct {
	SettingsPath string
	Outcome      string // "published", "updated" or "key_absent"
	DefaultType  string
	Warning      error // set when the settings file lacks the key
}
