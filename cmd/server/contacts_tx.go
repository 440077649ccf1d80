package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "contacts/pkg/domain-errors"
	txcontext "contacts/pkg/platform/tx"
)

const defaultContactsTxTimeout = 5 * time.Second

// contactsPostgresTx runs a mutation inside one *sql.Tx. Stores pick the
// transaction up from the context via tx.QuerierFrom. A nested call joins the
// outer transaction.
type contactsPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newContactsPostgresTx(db *sql.DB) *contactsPostgresTx {
	return &contactsPostgresTx{db: db}
}

func (t *contactsPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultContactsTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sqlTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = sqlTx.Rollback() //nolint:errcheck // rollback after commit is no-op; error already captured
	}()

	if err := fn(txcontext.WithTx(ctx, sqlTx)); err != nil {
		return err
	}

	return sqlTx.Commit()
}
