package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
	"fdrates/internal/infrastructure/persistence"
	"fdrates/pkg/dbtest"
)

// testDB connects to the database named by TEST_PG_DSN and applies the
// migrations. Tests are skipped when the variable is unset.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/001_init.sql"))

	_, err = db.Exec(`TRUNCATE rate_quotes, run_logs`)
	require.NoError(t, err)

	return db
}

func ptr(f float64) *float64 { return &f }

func TestRateQuoteRepositoryReplaceForBank(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := testDB(t)
	repo := persistence.NewRateQuoteRepository(db)

	cargills := []entity.RateQuote{
		{BankName: "Cargills Bank", FDType: value.FDTypeStandard, InstitutionType: value.InstitutionBank, TermMonths: 12, PayoutSchedule: value.PayoutAtMaturity, InterestRate: 14.5, AER: ptr(15.25)},
		{BankName: "Cargills Bank", FDType: value.FDTypeStandard, InstitutionType: value.InstitutionBank, TermMonths: 6, PayoutSchedule: value.PayoutMonthly, InterestRate: 12.0},
	}
	sampath := []entity.RateQuote{
		{BankName: "Sampath Bank", FDType: value.FDTypeStandard, InstitutionType: value.InstitutionBank, TermMonths: 12, PayoutSchedule: value.PayoutAtMaturity, InterestRate: 13.75},
	}

	rq.NoError(repo.ReplaceForBank(ctx, "Cargills Bank", cargills))
	rq.NoError(repo.ReplaceForBank(ctx, "Sampath Bank", sampath))

	quotes, err := repo.List(ctx)
	rq.NoError(err)
	rq.Len(quotes, 3)

	// Ordered by bank then term.
	rq.Equal("Cargills Bank", quotes[0].BankName)
	rq.Equal(6, quotes[0].TermMonths)
	rq.Equal("Cargills Bank", quotes[1].BankName)
	rq.Equal(12, quotes[1].TermMonths)
	rq.NotNil(quotes[1].AER)
	rq.Equal(15.25, *quotes[1].AER)
	rq.Equal("Sampath Bank", quotes[2].BankName)

	// A replace swaps only the named bank's rows.
	rq.NoError(repo.ReplaceForBank(ctx, "Cargills Bank", cargills[:1]))

	quotes, err = repo.List(ctx)
	rq.NoError(err)
	rq.Len(quotes, 2)
	rq.Equal("Cargills Bank", quotes[0].BankName)
	rq.Equal("Sampath Bank", quotes[1].BankName)
}

func TestRateQuoteRepositoryBestRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := testDB(t)
	repo := persistence.NewRateQuoteRepository(db)

	rq.NoError(repo.ReplaceForBank(ctx, "LOLC Finance", []entity.RateQuote{
		{BankName: "LOLC Finance", FDType: value.FDTypeStandard, InstitutionType: value.InstitutionFinanceCompany, TermMonths: 12, PayoutSchedule: value.PayoutAtMaturity, InterestRate: 16.0},
		{BankName: "LOLC Finance", FDType: value.FDTypeStandard, InstitutionType: value.InstitutionFinanceCompany, TermMonths: 24, PayoutSchedule: value.PayoutAtMaturity, InterestRate: 15.0, AER: ptr(16.5)},
	}))

	best, ok, err := repo.BestRate(ctx, "LOLC Finance")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal(16.5, best) // AER wins over nominal

	_, ok, err = repo.BestRate(ctx, "Unknown Bank")
	rq.NoError(err)
	rq.False(ok)
}

func TestRunLogRepositoryUpsert(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := testDB(t)
	repo := persistence.NewRunLogRepository(db)

	log := entity.RunLog{
		Name:            "Cargills Bank",
		InstitutionType: value.InstitutionBank,
		Status:          entity.RunSuccess,
		RecordsUpdated:  12,
		ErrorMessage:    "N/A",
	}

	rq.NoError(repo.Upsert(ctx, log))

	log.Status = entity.RunFailed
	log.RecordsUpdated = 0
	log.ErrorMessage = "feed replied 502"
	rq.NoError(repo.Upsert(ctx, log))

	got, err := repo.GetByName(ctx, "Cargills Bank")
	rq.NoError(err)
	rq.Equal(entity.RunFailed, got.Status)
	rq.Equal("feed replied 502", got.ErrorMessage)

	logs, err := repo.List(ctx)
	rq.NoError(err)
	rq.Len(logs, 1)

	_, err = repo.GetByName(ctx, "Unknown")
	rq.Error(err)
}
