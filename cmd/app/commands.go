package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getAuthCommands()...)
	cmds = append(cmds, getIdentifierCommands()...)
	return cmds
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func operatorFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "operator",
		Aliases:  []string{"o"},
		Required: required,
		Usage:    "Email of the portal user performing the operation",
	}
}
