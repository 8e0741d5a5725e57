// Package viewer is the terminal client for the rates service: it fetches
// the raw quote set once, then filters, projects and sorts locally.
package viewer

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"fdrates/internal/domain/service/rates"
)

type Options struct {
	Amount decimal.Decimal
	Filter rates.Filter
	Sort   rates.SortKey
}

type Viewer struct {
	client *Client
	out    io.Writer
}

func New(client *Client, out io.Writer) *Viewer {
	return &Viewer{
		client: client,
		out:    out,
	}
}

// Run executes one fetch-filter-project-sort-render pass. Any load failure
// collapses to the generic banner; the returned error carries the detail
// for the caller's exit code, not for display.
func (v *Viewer) Run(ctx context.Context, opts Options) error {
	quotes, err := v.client.FetchRates(ctx)
	if err != nil {
		fmt.Fprintln(v.out, RenderError())
		return fmt.Errorf("fetch rates: %w", err)
	}

	filtered := rates.Apply(quotes, opts.Filter)
	if len(filtered) == 0 {
		fmt.Fprintln(v.out, RenderEmpty())
		return nil
	}

	amount, _ := opts.Amount.Float64()
	projections := rates.Project(filtered, amount)
	rates.Sort(projections, opts.Sort)

	fmt.Fprintln(v.out, RenderTable(projections, opts.Amount))

	return nil
}
