/*
 * root.go, part of ptrac.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

// Package commands implements the ptracdump CLI's subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ptracdump",
	Short: "Inspect and dump MCNP PTRAC particle-track files",
	Long: `ptracdump reads MCNP PTRAC particle-track files, in either their
ASCII or sequential-binary encoding, and prints their header and decoded
particle histories.

Use "ptracdump [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main() and only needs to happen once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dumpCmd)
}
