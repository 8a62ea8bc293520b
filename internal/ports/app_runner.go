package ports

import "context"

// AppRunnerPort spawns the target application as a child process and
// blocks until it exits, returning its exit code. The launcher injects
// the profile and config paths through environment variables.
type AppRunnerPort interface {
	Run(ctx context.Context, profileDir string, configPath string) (int, error)
}
