package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

type fakeTx struct {
	rollbackErr error
	rolledBack  bool
}

func (f *fakeTx) Commit(context.Context) error { return nil }

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return f.rollbackErr
}

func TestSafeRollback(t *testing.T) {
	for _, err := range []error{nil, errors.New(domain.ErrMsgTxClosed), errors.New("connection reset")} {
		tx := &fakeTx{rollbackErr: err}
		assert.NotPanics(t, func() { SafeRollback(context.Background(), tx) })
		assert.True(t, tx.rolledBack)
	}
}
