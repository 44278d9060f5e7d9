package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, mirroring the global flags.
const (
	EnvFile   = "EXPO_FILE"
	EnvConfig = "EXPO_CONFIG"
	EnvLog    = "EXPO_LOG"
	EnvTrace  = "EXPO_TRACE"
)

// ExtensionPrefix prefixes the name of external expo-<subcommand> binaries.
const ExtensionPrefix = "expo-"

// RunExtension attempts to find and execute an external expo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvFile+"="+*dataFile,
		EnvConfig+"="+*configFile,
		EnvLog+"="+*logMode,
		EnvTrace+"="+strconv.FormatBool(*tracing),
	)

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
