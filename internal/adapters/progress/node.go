package progress

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/brot/internal/core/ports"
)

// NodeID is the unique identifier for the progress reporter Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.Progress]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Progress, error) {
			return NewReporter(os.Stderr, DetectMode(os.Stderr)), nil
		},
	})
}
