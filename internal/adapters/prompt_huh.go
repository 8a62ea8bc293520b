package adapters

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"microdrop-launcher/internal/types"
)

// HuhPrompter renders interactive confirmation prompts.
type HuhPrompter struct{}

func NewHuhPrompter() HuhPrompter {
	return HuhPrompter{}
}

// Confirm asks a yes/no question. A user abort counts as "no".
func (p HuhPrompter) Confirm(title string, message string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(message).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// ConfirmUpgrade asks the upgrade-now / remind-later / ignore-version
// question for a newly available version. A user abort counts as
// remind-later.
func (p HuhPrompter) ConfirmUpgrade(pkg string, version string) (types.UpgradeChoice, error) {
	choice := types.UpgradeChoiceLater
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[types.UpgradeChoice]().
			Title(fmt.Sprintf("Upgrade to %s v%s?", pkg, version)).
			Description("A new version of "+pkg+" is available.").
			Options(
				huh.NewOption("Upgrade now", types.UpgradeChoiceNow),
				huh.NewOption("Remind me later", types.UpgradeChoiceLater),
				huh.NewOption("Ignore this version", types.UpgradeChoiceIgnore),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return types.UpgradeChoiceLater, nil
		}
		return types.UpgradeChoiceLater, err
	}
	return choice, nil
}

// SelectProfile asks the user to pick a profile path, "" on abort.
func (p HuhPrompter) SelectProfile(records []types.ProfileRecord) (string, error) {
	options := make([]huh.Option[string], 0, len(records))
	for _, record := range records {
		label := record.Path
		if record.Used != nil {
			label = fmt.Sprintf("%s (last used %s)", record.Path, record.Used.Format("2006-01-02 15:04"))
		}
		options = append(options, huh.NewOption(label, record.Path))
	}
	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select profile to launch").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return selected, nil
}

// AutoPrompter answers prompts without user interaction: confirmations
// are accepted, upgrade offers deferred, and the most recently used
// profile selected. Backs the --default/--yes flags and tests.
type AutoPrompter struct{}

func NewAutoPrompter() AutoPrompter {
	return AutoPrompter{}
}

func (AutoPrompter) Confirm(string, string) (bool, error) {
	return true, nil
}

func (AutoPrompter) ConfirmUpgrade(string, string) (types.UpgradeChoice, error) {
	return types.UpgradeChoiceLater, nil
}

func (AutoPrompter) SelectProfile(records []types.ProfileRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	return records[0].Path, nil
}
