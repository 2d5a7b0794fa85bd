package provision

import "context"

// Gate ties the marker store to the installer: run the one-time setup
// pass unless it already succeeded for this user.
type Gate struct {
	store     Store
	installer *Installer
}

// NewGate creates a Gate.
func NewGate(store Store, installer *Installer) *Gate {
	return &Gate{store: store, installer: installer}
}

// Ensure checks the marker and runs the setup pass if it is absent.
// Returns (nil, nil) when the environment is already provisioned.
// A failed pass is not an error: the marker is withheld so the next run
// retries, and the caller proceeds to launch regardless. The only error
// path is a marker that could not be written after a successful pass.
func (g *Gate) Ensure(ctx context.Context, username string, progress ProgressCallback) (*Result, error) {
	if progress == nil {
		progress = NoOpProgress
	}

	if g.store.IsProvisioned(username) {
		progress(newEvent(StageSkipped, "", "Environment already provisioned", 100, false))
		return nil, nil
	}

	result := g.installer.Run(ctx, progress)

	if result.Succeeded() {
		progress(newEvent(StageMarking, "", "Recording successful setup", 100, false))
		if err := g.store.MarkProvisioned(username); err != nil {
			return result, err
		}
	}

	return result, nil
}
