package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fdrates/internal/domain"
	"fdrates/internal/domain/entity"
	"fdrates/pkg/errcodes"
)

type RateQuoteRepository struct {
	db *sqlx.DB
}

func NewRateQuoteRepository(db *sqlx.DB) *RateQuoteRepository {
	return &RateQuoteRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *RateQuoteRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// List returns the full quote set ordered the way the original table was
// served: by bank, then by term.
func (r *RateQuoteRepository) List(ctx context.Context) ([]entity.RateQuote, error) {
	query := `
		SELECT id, bank_name, fd_type, institution_type, term_months,
		       payout_schedule, interest_rate, aer, updated_at
		FROM rate_quotes
		ORDER BY bank_name, term_months`

	var schemas []rateQuoteSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list rate quotes")
	}

	quotes := make([]entity.RateQuote, 0, len(schemas))
	for _, s := range schemas {
		quotes = append(quotes, s.toDomain())
	}

	return quotes, nil
}

// ReplaceForBank atomically swaps all quotes of one institution: old rows
// are deleted and the fresh set inserted inside a single transaction.
func (r *RateQuoteRepository) ReplaceForBank(ctx context.Context, bankName string, quotes []entity.RateQuote) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM rate_quotes WHERE bank_name = $1`, bankName,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to delete old quotes")
		}

		query := `
			INSERT INTO rate_quotes (
				bank_name, fd_type, institution_type, term_months,
				payout_schedule, interest_rate, aer, updated_at
			) VALUES (
				:bank_name, :fd_type, :institution_type, :term_months,
				:payout_schedule, :interest_rate, :aer, :updated_at
			)`

		now := time.Now()

		for i, quote := range quotes {
			params := map[string]any{
				"bank_name":        quote.BankName,
				"fd_type":          string(quote.FDType),
				"institution_type": string(quote.InstitutionType),
				"term_months":      quote.TermMonths,
				"payout_schedule":  string(quote.PayoutSchedule),
				"interest_rate":    quote.InterestRate,
				"aer":              quote.AER,
				"updated_at":       now,
			}

			if _, err := tx.NamedExecContext(ctx, query, params); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to insert quote at index %d", i))
			}
		}

		return nil
	})
}

// BestRate returns the highest effective rate currently stored for a bank.
// The second value is false when the bank has no rows.
func (r *RateQuoteRepository) BestRate(ctx context.Context, bankName string) (float64, bool, error) {
	query := `
		SELECT COALESCE(MAX(COALESCE(aer, interest_rate)), 0), COUNT(*)
		FROM rate_quotes
		WHERE bank_name = $1`

	var (
		best  float64
		count int
	)

	row := r.db.QueryRowContext(ctx, query, bankName)
	if err := row.Scan(&best, &count); err != nil {
		return 0, false, domain.WrapError(err, errcodes.InternalServerError, "failed to get best rate")
	}

	return best, count > 0, nil
}
