package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Error message prefixes used for classification. The CLI exit-code
// mapping and the non-fatal upgrade-phase handling both key off these.
const (
	msgToolNotFound    = "package manager executable not found"
	msgQueryFailed     = "package manager query failed"
	msgNotInstalled    = "package not installed"
	msgUpgradeFailed   = "package upgrade failed"
	msgVersionMismatch = "profile major version does not match installed version"
	msgMalformedOutput = "malformed package manager output"
)

// NewToolNotFound reports that the package manager executable could not
// be located. Non-fatal for the launch flow: the upgrade check is
// skipped.
func NewToolNotFound(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msgToolNotFound).
		WithCause(cause)
}

// NewQueryFailed reports a non-zero exit from a package manager query
// subprocess, e.g. no network connection.
func NewQueryFailed(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(msgQueryFailed).
		WithCause(cause)
}

// NewNotInstalled reports an upgrade request for a package that is not
// installed.
func NewNotInstalled(pkg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %s", msgNotInstalled, pkg))
}

// NewUpgradeFailed reports a non-zero exit from the install subprocess,
// carrying its captured output.
func NewUpgradeFailed(output string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s: %s", msgUpgradeFailed, strings.TrimSpace(output))).
		WithCause(cause)
}

// NewVersionMismatch reports a profile whose marker major version
// differs from the installed application's major version.
func NewVersionMismatch(profileVersion string, installedVersion string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: profile %s, installed %s",
			msgVersionMismatch, profileVersion, installedVersion))
}

// NewMalformedOutput reports package manager output that could not be
// parsed. Callers degrade to an assume-success outcome rather than
// propagating this as fatal.
func NewMalformedOutput(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msgMalformedOutput).
		WithCause(cause)
}

// IsToolNotFound reports whether err classifies as a missing package
// manager executable.
func IsToolNotFound(err error) bool { return hasMsgPrefix(err, msgToolNotFound) }

// IsQueryFailed reports whether err classifies as a failed package
// manager query.
func IsQueryFailed(err error) bool { return hasMsgPrefix(err, msgQueryFailed) }

// IsNotInstalled reports whether err classifies as an upgrade of an
// uninstalled package.
func IsNotInstalled(err error) bool { return hasMsgPrefix(err, msgNotInstalled) }

// IsUpgradeFailed reports whether err classifies as a failed upgrade
// subprocess.
func IsUpgradeFailed(err error) bool { return hasMsgPrefix(err, msgUpgradeFailed) }

// IsVersionMismatch reports whether err classifies as a profile/
// application major version mismatch.
func IsVersionMismatch(err error) bool { return hasMsgPrefix(err, msgVersionMismatch) }

// IsMalformedOutput reports whether err classifies as unparseable
// package manager output.
func IsMalformedOutput(err error) bool { return hasMsgPrefix(err, msgMalformedOutput) }

func hasMsgPrefix(err error, prefix string) bool {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, prefix)
	}
	return false
}
