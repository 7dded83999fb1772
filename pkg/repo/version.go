package repo

import (
	"fmt"
	"runtime"
)

// set by ldflags at build time
var (
	BuildVersion = "dev"
	BuildBranch  = "unknown"
	BuildCommit  = "unknown"
	BuildDate    = "unknown"
)

var (
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
