package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an application-level error with the context logger
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("application error", "error", err)
}
