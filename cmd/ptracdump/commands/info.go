/*
 * info.go, part of ptrac.
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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/ptrac"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a PTRAC file's parsed header",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	r, err := ptrac.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	hd := r.Header()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "code:          %s %s\n", hd.Code, hd.CodeVersion)
	fmt.Fprintf(out, "load date:     %s\n", hd.LoadDate)
	fmt.Fprintf(out, "id timestamp:  %s\n", hd.IDTimestamp)
	fmt.Fprintf(out, "comment:       %s\n", hd.Comment)
	fmt.Fprintf(out, "filter class:  %s\n", hd.FilterClass)
	fmt.Fprintf(out, "keyword cards: %d\n", len(hd.KeywordEntries))
	for i, kw := range hd.KeywordEntries {
		fmt.Fprintf(out, "  [%d] params=%v\n", i, kw.Params)
	}
	for tag := ptrac.TagNPS; int(tag) < len(hd.Layout); tag++ {
		if hd.Counts[tag] == 0 {
			continue
		}
		fmt.Fprintf(out, "%-6s count=%-3d fields=%v\n", tag, hd.Counts[tag], hd.Layout[tag])
	}
	return nil
}
