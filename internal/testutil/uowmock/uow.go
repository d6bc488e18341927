package uowmock

import (
	"context"
	"errors"

	"assetcare-backend/internal/domain/maintenance"
	"assetcare-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: not implemented")

// UoW is a function-backed mock of uow.UnitOfWork. Repos carries the
// repositories handed to the callback; Step is the row WithinStepTx locks.
// Set the *Fn fields to override the default pass-through behavior.
type UoW struct {
	Repos uow.Repos
	Step  *maintenance.MaintenanceStep

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinStepTxFn func(ctx context.Context, stepID uint64, fn func(r uow.Repos, s *maintenance.MaintenanceStep) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinStepTx(ctx context.Context, stepID uint64, fn func(r uow.Repos, s *maintenance.MaintenanceStep) error) error {
	if m.WithinStepTxFn != nil {
		return m.WithinStepTxFn(ctx, stepID, fn)
	}
	if m.Step == nil {
		return errUnimplemented
	}
	if m.Step.ID != stepID {
		return maintenance.ErrNotFound
	}
	return fn(m.Repos, m.Step)
}
