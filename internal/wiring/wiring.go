// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/brot/internal/adapters/cachefile"
	_ "go.trai.ch/brot/internal/adapters/config"
	_ "go.trai.ch/brot/internal/adapters/imagefile"
	_ "go.trai.ch/brot/internal/adapters/logger"
	_ "go.trai.ch/brot/internal/adapters/progress"
	_ "go.trai.ch/brot/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/brot/internal/app"
)
