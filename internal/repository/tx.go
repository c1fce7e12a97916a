package repository

import (
	"context"
	"log/slog"

	"specmaster/gen/ent"
)

// TxRunner executes a write batch against transaction-scoped repositories.
// One processing run equals one transaction: either every document's
// extraction and variants commit, or none do.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(variants VariantRepository, extractions ExtractionRepository) error) error
}

type entTxRunner struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTxRunner(client *ent.Client, logger *slog.Logger) TxRunner {
	return &entTxRunner{client: client, logger: logger}
}

func (r *entTxRunner) RunInTx(ctx context.Context, fn func(VariantRepository, ExtractionRepository) error) error {
	return WithTx(ctx, r.client, func(tx *ent.Tx) error {
		c := tx.Client()
		return fn(NewVariantRepository(c, r.logger), NewExtractionRepository(c, r.logger))
	})
}
