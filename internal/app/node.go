package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brot/internal/adapters/cachefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/adapters/imagefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/adapters/progress"  //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/brot/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cachefile.NodeID,
			imagefile.NodeID,
			progress.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	encoder, err := graft.Dep[ports.ImageEncoder](ctx)
	if err != nil {
		return nil, err
	}
	prog, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, store, encoder, prog, w, log), nil
}
