package operator

import (
	"context"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
)

// Operator is a worker that drains the queue. Every item runs inside its own
// database transaction: the action performs against a Writer, and the
// transaction commits only when the action returns no error.
type Operator struct {
	storage *storage.Storage
	logger  *logrus.Logger
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		logger:  logger,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			o.logger.WithFields(logrus.Fields{
				"action": reflect.TypeOf(item.action).String(),
				"error":  rollbackErr.Error(),
			}).Error("Operator.ProcessItem.RollbackFailed")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
