package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
)

// Version is reported by `wirescreen -version`.
const Version = "0.1.0"

// Commands returns the command table. Logs go to logOut; a nil factory means NewClient.
func Commands(ui cli.Ui, logOut io.Writer, newClient ClientFactory) map[string]cli.CommandFactory {
	base := &baseCommand{UI: ui, LogOut: logOut, NewClient: newClient}

	record := func(kind string, many bool) cli.CommandFactory {
		return func() (cli.Command, error) {
			return &RecordCommand{baseCommand: base, Kind: kind, Many: many}, nil
		}
	}

	return map[string]cli.CommandFactory{
		"search": func() (cli.Command, error) {
			return &SearchCommand{baseCommand: base}, nil
		},
		"advanced-search": func() (cli.Command, error) {
			return &AdvancedSearchCommand{baseCommand: base}, nil
		},
		"organization":  record(KindOrganization, false),
		"organizations": record(KindOrganization, true),
		"person":        record(KindPerson, false),
		"persons":       record(KindPerson, true),
	}
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     "wirescreen",
		Args:     args,
		Version:  Version,
		Commands: Commands(ui, os.Stderr, nil),
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirescreen: %v\n", err)
		return 1
	}
	return exitCode
}
