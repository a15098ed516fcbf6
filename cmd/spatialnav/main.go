// Command spatialnav previews, replays and traces spatial focus navigation over layout files.
package main

import (
	"runtime"

	"github.com/bnema/spatialnav/internal/cli/cmd"
	"github.com/bnema/spatialnav/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
