package sink

import (
	"context"
	"fmt"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// checkPartition rejects nil partitions and cancelled contexts before any output is produced.
func checkPartition(ctx context.Context, p *types.Partition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil {
		return types.ErrNoPartition
	}

	return nil
}

func unwritable(format string, err error) error {
	return fmt.Errorf("%w: %s: %w", types.ErrDestinationUnwritable, format, err)
}
