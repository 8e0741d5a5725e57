package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"fdrates/internal/domain"
	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
	"fdrates/pkg/errcodes"
	"fdrates/pkg/httpx"
	"fdrates/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// record is one row as the scrapers publish it: loose text fields that still
// need the same cleaning the original pipeline did.
type record struct {
	FDType         string `json:"fdType"`
	Term           string `json:"term"`
	PayoutSchedule string `json:"payoutSchedule"`
	InterestRate   string `json:"interestRate"`
	AER            string `json:"aer"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// staticAuthenticator satisfies httpx.AuthBearerRoundTripper for feeds
// protected by a fixed service token.
type staticAuthenticator struct {
	token string
}

func (a staticAuthenticator) Authenticate(context.Context) error { return nil }
func (a staticAuthenticator) BearerToken() string                { return a.token }

func NewClient(baseURL, bearerToken string, timeout time.Duration) *Client {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	if bearerToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, staticAuthenticator{token: bearerToken})
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Fetch downloads one source feed and normalizes it into rate quotes.
// Rows with unparsable rates or terms are skipped, matching the original
// scraper behaviour of dropping cells it cannot clean.
func (c *Client) Fetch(ctx context.Context, src Source) ([]entity.RateQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL(c.baseURL), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FeedUnavailable, "feed request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(
			errcodes.FeedUnavailable,
			fmt.Sprintf("feed %q replied %d", src.Name, resp.StatusCode),
		)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, domain.WrapError(err, errcodes.FeedMalformed, "feed payload is not an array")
	}

	return c.normalize(src, records), nil
}

func (c *Client) normalize(src Source, records []record) []entity.RateQuote {
	quotes := make([]entity.RateQuote, 0, len(records))

	for _, rec := range records {
		rate, ok := CleanRate(rec.InterestRate)
		if !ok {
			continue
		}

		termMonths, ok := ParseTermMonths(rec.Term)
		if !ok {
			continue
		}

		quote := entity.RateQuote{
			BankName:        src.Name,
			FDType:          value.FDType(rec.FDType),
			InstitutionType: src.InstitutionType,
			TermMonths:      termMonths,
			PayoutSchedule:  value.PayoutSchedule(rec.PayoutSchedule),
			InterestRate:    rate,
		}

		if aer, ok := CleanRate(rec.AER); ok {
			quote.AER = &aer
		}

		quotes = append(quotes, quote)
	}

	return quotes
}
