package ports

import "microdrop-launcher/internal/types"

// PrompterPort supplies the yes/no/cancel capability that the gate and
// upgrade flows request confirmations through. Implementations may be
// interactive or auto-accepting.
type PrompterPort interface {
	// Confirm asks a yes/no question.
	Confirm(title string, message string) (bool, error)

	// ConfirmUpgrade asks whether to upgrade to a newly available
	// version: now, later, or ignore this version permanently.
	ConfirmUpgrade(pkg string, version string) (types.UpgradeChoice, error)

	// SelectProfile asks the user to pick one profile path from the
	// registry, returning "" when the user declines.
	SelectProfile(records []types.ProfileRecord) (string, error)
}
