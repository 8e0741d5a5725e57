package server

import (
	"context"
	"fmt"
	"net/http"

	"fdrates/internal/domain/entity"
	"fdrates/pkg/httpx/reply"
	"fdrates/pkg/lox"
)

type ratesService interface {
	List(context.Context) ([]entity.RateQuote, error)
}

type RatesServer struct {
	ratesService ratesService
}

func NewRatesServer(ratesService ratesService) RatesServer {
	return RatesServer{
		ratesService: ratesService,
	}
}

// Rates change a few times a day and consumers must always see the latest
// scrape, so the response is explicitly non-cacheable.
func (s RatesServer) getV1Rates(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	quotes, err := s.ratesService.List(ctx)
	if err != nil {
		return fmt.Errorf("ratesService.List: %w", err)
	}

	w.Header().Set("Cache-Control", "no-store")

	reply.JSON(ctx, w, http.StatusOK, lox.Map(quotes, newRESTRateQuote))

	return nil
}
