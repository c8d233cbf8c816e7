package ui

// VersionInfo is build metadata injected through ldflags in cmd/main.go
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

var buildInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "One bottom bar, many conversations",
	Version:   "dev",
}

// SetVersionInfo replaces the build metadata shown in dev-mode dialog headers
func SetVersionInfo(info VersionInfo) {
	buildInfo = info
}

func shortCommit() string {
	if len(buildInfo.Commit) > 7 {
		return buildInfo.Commit[:7]
	}
	return buildInfo.Commit
}
