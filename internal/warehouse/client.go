package warehouse

import (
	"context"

	"github.com/scripta/scripta-backend/internal/types"
)

// Client fetches the material dataset from the analytical warehouse. The
// full fetch returns every row of the unified dataset and can take tens of
// seconds, callers decide the timeout through ctx.
type Client interface {
	FetchFullMaterialDataset(ctx context.Context) ([]*types.MaterialRecord, error)
	TestConnection(ctx context.Context) error
}
