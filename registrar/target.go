package registrar

import (
	"github.com/ruteri/fid-registrar/interfaces"
)

// Target selects which FID a name is claimed for.
// It is implemented by NewRegistration and ExistingFID only.
type Target interface {
	isTarget()
}

// NewRegistration buys a fresh FID with ExtraStorage extra storage units.
type NewRegistration struct {
	ExtraStorage uint64
}

// ExistingFID claims the name for an FID already owned by the signer.
// Ownership is not checked locally; the registry rejects a mismatch.
type ExistingFID struct {
	FID interfaces.FID
}

func (NewRegistration) isTarget() {}
func (ExistingFID) isTarget()     {}
