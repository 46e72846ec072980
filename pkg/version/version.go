package version

// Version contains the binary version injected by the build system via ldflags
var Version string

// GitCommit contains the git commit sha that the binary was built with, injected by the build system via ldflags
var GitCommit string

// GetVersion returns the version string, falling back to v0.1.0 when the
// build system injected nothing, with the short commit hash appended if
// available.
func GetVersion() string {
	version := Version
	if version == "" {
		version = "v0.1.0"
	}

	commit := GitCommit
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return version + "-" + commit
}
