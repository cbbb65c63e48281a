package cli

import (
	"context"
	"fmt"

	"github.com/example/modgen/internal/ports/primary"
)

// InstallAdapter translates CLI operations to InstallService calls.
type InstallAdapter struct {
	service primary.InstallService
}

// NewInstallAdapter creates a new InstallAdapter with the given service.
func NewInstallAdapter(service primary.InstallService) *InstallAdapter {
	return &InstallAdapter{service: service}
}

// Install persists defaultType. A settings file without the key is a
// warning, not an error.
func (a *InstallAdapter) Install(ctx context.Context, projectRoot, defaultType string) (*primary.InstallResponse, error) {
	resp, err := a.service.Install(ctx, primary.InstallRequest{
		ProjectRoot: projectRoot,
		DefaultType: defaultType,
	})
	if err != nil {
		return nil, fmt.Errorf("install failed: %w", err)
	}
	return resp, nil
}
