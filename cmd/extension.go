package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// Environment passed to extensions, carrying the global flags.
const (
	EnvScenarioFile = "AR_SCENARIO_FILE"
	EnvVerbose      = "AR_VERBOSE"
)

// RunExtension attempts to find and execute an external ar-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	logger := newLogger()
	defer logger.Sync()
	externalCmdName := "ar-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("extension not found", zap.String("name", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvScenarioFile+"="+*scenarioFile)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
