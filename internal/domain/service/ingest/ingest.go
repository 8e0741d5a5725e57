package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"fdrates/internal/domain/entity"
	"fdrates/internal/infrastructure/feed"
	"fdrates/pkg/contextx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type RateQuoteRepository interface {
	ReplaceForBank(ctx context.Context, bankName string, quotes []entity.RateQuote) error
	BestRate(ctx context.Context, bankName string) (float64, bool, error)
}

type RunLogRepository interface {
	Upsert(ctx context.Context, log entity.RunLog) error
}

type FeedFetcher interface {
	Fetch(ctx context.Context, src feed.Source) ([]entity.RateQuote, error)
}

type FingerprintStore interface {
	Get(ctx context.Context, source string) (string, error)
	Set(ctx context.Context, source, digest string) error
}

// quoteValidation mirrors the fields a publishable quote must carry.
type quoteValidation struct {
	BankName       string   `validate:"required"`
	TermMonths     int      `validate:"gt=0"`
	PayoutSchedule string   `validate:"required"`
	InterestRate   float64  `validate:"gt=0,lte=100"`
	AER            *float64 `validate:"omitempty,gt=0,lte=100"`
}

// Service refreshes rate quotes source by source. One failing source only
// marks its own run log; a refresh cycle never aborts.
type Service struct {
	feeds        FeedFetcher
	quotes       RateQuoteRepository
	runs         RunLogRepository
	fingerprints FingerprintStore
	alerts       chan<- entity.RateAlert
	validate     *validator.Validate
}

func NewService(
	feeds FeedFetcher,
	quotes RateQuoteRepository,
	runs RunLogRepository,
	fingerprints FingerprintStore,
) *Service {
	return &Service{
		feeds:        feeds,
		quotes:       quotes,
		runs:         runs,
		fingerprints: fingerprints,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithAlerts publishes a RateAlert whenever a refresh changes the best
// effective rate an institution offers.
func (s *Service) WithAlerts(alerts chan<- entity.RateAlert) *Service {
	s.alerts = alerts
	return s
}

// RefreshAll walks the registry. Errors are already reflected in the run
// logs, so they are only logged here.
func (s *Service) RefreshAll(ctx context.Context) {
	for _, src := range feed.Registry() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := s.RefreshSource(ctx, src); err != nil {
			logger(ctx).Error("refresh failed", "source", src.Name, "error", err)
		}
	}
}

// RefreshSource fetches, validates and stores one source's quotes, then
// stamps the run log. Returns the number of records written.
func (s *Service) RefreshSource(ctx context.Context, src feed.Source) (int, error) {
	started := time.Now()

	log := entity.RunLog{
		Name:            src.Name,
		InstitutionType: src.InstitutionType,
		Status:          entity.RunPending,
		ErrorMessage:    "N/A",
	}

	count, err := s.refresh(ctx, src)

	log.LastRun = time.Now()
	log.RecordsUpdated = count

	if err != nil {
		log.Status = entity.RunFailed
		log.ErrorMessage = err.Error()
	} else {
		log.Status = entity.RunSuccess
	}

	if upsertErr := s.runs.Upsert(ctx, log); upsertErr != nil {
		logger(ctx).Error("run log upsert failed", "source", src.Name, "error", upsertErr)
	}

	observeRefresh(src.Name, log.Status, count, time.Since(started))

	return count, err
}

func (s *Service) refresh(ctx context.Context, src feed.Source) (int, error) {
	fetched, err := s.feeds.Fetch(ctx, src)
	if err != nil {
		return 0, err
	}

	quotes := s.validQuotes(ctx, fetched)
	if len(quotes) == 0 {
		return 0, errNoData
	}

	digest, err := fingerprint(quotes)
	if err != nil {
		return 0, err
	}

	known, err := s.fingerprints.Get(ctx, src.Name)
	if err != nil {
		// Redis being down must not stop the refresh.
		logger(ctx).Error("fingerprint lookup failed", "source", src.Name, "error", err)
	}

	if known != "" && known == digest {
		logger(ctx).Info("feed unchanged, skipping write", "source", src.Name)
		return 0, nil
	}

	prevBest, hadRows, err := s.quotes.BestRate(ctx, src.Name)
	if err != nil {
		return 0, err
	}

	if err := s.quotes.ReplaceForBank(ctx, src.Name, quotes); err != nil {
		return 0, err
	}

	if err := s.fingerprints.Set(ctx, src.Name, digest); err != nil {
		logger(ctx).Error("fingerprint store failed", "source", src.Name, "error", err)
	}

	s.publishAlert(ctx, src, prevBest, hadRows, quotes)

	return len(quotes), nil
}

func (s *Service) validQuotes(ctx context.Context, quotes []entity.RateQuote) []entity.RateQuote {
	valid := make([]entity.RateQuote, 0, len(quotes))

	for _, q := range quotes {
		check := quoteValidation{
			BankName:       q.BankName,
			TermMonths:     q.TermMonths,
			PayoutSchedule: string(q.PayoutSchedule),
			InterestRate:   q.InterestRate,
			AER:            q.AER,
		}

		if err := s.validate.StructCtx(ctx, check); err != nil {
			logger(ctx).Warn("dropping invalid quote", "bank", q.BankName, "error", err)
			continue
		}

		valid = append(valid, q)
	}

	return valid
}

func (s *Service) publishAlert(ctx context.Context, src feed.Source, prevBest float64, hadRows bool, quotes []entity.RateQuote) {
	if s.alerts == nil || !hadRows {
		return
	}

	var newBest float64
	for _, q := range quotes {
		if rate := q.EffectiveRate(); rate > newBest {
			newBest = rate
		}
	}

	if newBest == prevBest {
		return
	}

	alert := entity.RateAlert{
		BankName:       src.Name,
		PreviousBest:   prevBest,
		NewBest:        newBest,
		RecordsUpdated: len(quotes),
	}

	select {
	case s.alerts <- alert:
	default:
		logger(ctx).Warn("alert channel full, dropping alert", "bank", src.Name)
	}
}

// fingerprint digests the normalized quote set; the JSON encoding keeps
// field order stable.
func fingerprint(quotes []entity.RateQuote) (string, error) {
	b, err := json.Marshal(quotes)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:]), nil
}
