package viewer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
	"fdrates/pkg/rest"
)

// Client is the one-shot fetcher for the rates endpoint. It does not retry:
// a failed load renders the generic banner and the user tries again.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchRates(ctx context.Context) ([]entity.RateQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/v1/rates", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var quotes []rest.RateQuote
	if err := jsoniter.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	result := make([]entity.RateQuote, 0, len(quotes))
	for _, q := range quotes {
		result = append(result, entity.RateQuote{
			ID:              q.ID,
			BankName:        q.BankName,
			FDType:          value.FDType(q.FDType),
			InstitutionType: value.InstitutionType(q.InstitutionType),
			TermMonths:      q.TermMonths,
			PayoutSchedule:  value.PayoutSchedule(q.PayoutSchedule),
			InterestRate:    q.InterestRate,
			AER:             q.AER,
		})
	}

	return result, nil
}
