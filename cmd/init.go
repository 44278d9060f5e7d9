package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/exposure/config"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a default configuration file" }
func (*initCmd) Usage() string {
	return `expo init [-force]

  Writes the default configuration to the file named by the global -config
  flag. An existing file is kept unless -force is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing configuration file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := *configFile
	if _, err := os.Stat(path); err == nil && !c.force {
		fmt.Fprintf(stderr, "Error: %s already exists, use -force to overwrite it\n", path)
		return subcommands.ExitFailure
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := config.Default()
	if *dataFile != "" {
		cfg.File = *dataFile
	}
	if err := cfg.SaveToFile(path); err != nil {
		fmt.Fprintf(stderr, "Error writing configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Successfully wrote configuration to %s\n", path)
	return subcommands.ExitSuccess
}
