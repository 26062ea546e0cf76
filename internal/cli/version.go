// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X ...cli.Version=v1.0.0" etc.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print the version of spamdetector",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			commit, date := versionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "spamdetector %s (commit %s, built %s)\n", Version, commit, date)
		},
	}
}

// versionInfo prefers the ldflags values and falls back to the VCS data
// the go tool embeds.
func versionInfo() (commit, date string) {
	commit, date = Commit, BuildDate
	if commit != "" && date != "" {
		return commit, date
	}

	hash, ts, modified := readBuildInfo()
	if commit == "" {
		commit = hash
		if modified && commit != "" {
			commit += "-dirty"
		}
	}
	if date == "" {
		date = ts
	}

	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return commit, date
}

// readBuildInfo returns the commit hash, commit time and whether the build
// had uncommitted changes. Test binaries carry no VCS settings.
func readBuildInfo() (string, string, bool) {
	var commitHash, commitTS, vcsModified string

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commitHash = setting.Value
			case "vcs.time":
				commitTS = setting.Value
			case "vcs.modified":
				vcsModified = setting.Value
			}
		}
	}

	return commitHash, commitTS, vcsModified == "true"
}
