package imagefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brot/internal/core/ports"
)

// NodeID is the unique identifier for the image encoder Graft node.
const NodeID graft.ID = "adapter.image_encoder"

func init() {
	graft.Register(graft.Node[ports.ImageEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
