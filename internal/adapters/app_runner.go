package adapters

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Environment variables carrying the resolved profile and config paths
// into the child application.
const (
	ProfileEnvVar = "MICRODROP_PROFILE"
	ConfigEnvVar  = "MICRODROP_CONFIG"
)

// ExecAppRunner runs the target application as a child process,
// blocking until it exits. Stdio is passed through so the application
// owns the terminal while it runs.
type ExecAppRunner struct {
	// Command is the program and leading arguments used to start the
	// application; the config path is appended after a -c flag.
	Command []string
}

func NewExecAppRunner(command []string) *ExecAppRunner {
	return &ExecAppRunner{Command: command}
}

// Run spawns the application in profileDir with the profile and config
// paths injected via environment variables, returning its exit code.
func (r *ExecAppRunner) Run(ctx context.Context, profileDir string, configPath string) (int, error) {
	if len(r.Command) == 0 {
		return 0, errors.New("application command is not configured")
	}
	args := append(append([]string{}, r.Command[1:]...), "-c", configPath)
	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	cmd.Dir = profileDir
	cmd.Env = append(os.Environ(),
		ProfileEnvVar+"="+profileDir,
		ConfigEnvVar+"="+configPath,
	)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debug().Str("profile", profileDir).Msg("starting application")
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to start application").
		WithCause(err)
}
