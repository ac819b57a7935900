// package version reports build metadata.
//
// The variables are set at build time:
//
//	go build -ldflags "-X github.com/information-sharing-networks/oaps-proof/internal/version.Version=v0.1.0 \
//	  -X github.com/information-sharing-networks/oaps-proof/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/information-sharing-networks/oaps-proof/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "runtime/debug"

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

// Get returns the build metadata. When the ldflags were not set, the VCS
// information recorded by the go tool is used instead.
func Get() Info {
	info := Info{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && len(s.Value) >= 7 {
				info.GitCommit = s.Value[:7]
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}
