package rates

import (
	"context"
	"fmt"

	"fdrates/internal/domain/entity"
)

type RateQuoteRepository interface {
	List(ctx context.Context) ([]entity.RateQuote, error)
}

// Service serves the full quote set. No filtering or payout math happens
// here: the serving path returns raw rows and the consumer runs the
// pipeline locally.
type Service struct {
	quotes RateQuoteRepository
}

func NewService(quotes RateQuoteRepository) *Service {
	return &Service{quotes: quotes}
}

func (s *Service) List(ctx context.Context) ([]entity.RateQuote, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("quotes.List: %w", err)
	}

	return quotes, nil
}
