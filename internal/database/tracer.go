package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// multiTracer fans pgx query events out to several tracers, since pgx
// accepts only one. Tracers that don't implement an event are skipped.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

type slowQueryKey struct{}

type slowQueryStart struct {
	sql     string
	startAt time.Time
}

// slowQueryTracer warns about statements that run longer than threshold.
type slowQueryTracer struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(log *zerolog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{log: log, threshold: threshold, now: time.Now}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{sql: data.SQL, startAt: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start.startAt)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn().
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", start.sql)
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.Msg("slow query")
}
