package ingest

import (
	"fdrates/internal/domain"
	"fdrates/pkg/errcodes"
)

// errNoData mirrors the original orchestrator's "No data extracted" run
// failure: a feed that parses to zero usable rows is a failed run.
var errNoData = domain.NewError(errcodes.FeedMalformed, "No data extracted")
