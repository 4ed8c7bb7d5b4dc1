package actions

import (
	"context"

	"github.com/keller-networks/pms-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
