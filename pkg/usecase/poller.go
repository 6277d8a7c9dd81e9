package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/interfaces"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/utils/apperr"
)

// Poller refreshes the snapshot from the upstream feed at a fixed
// interval. Each refresh carries a sequence number issued before the
// fetch; a result that arrives after a newer refresh was issued is
// discarded, so an out-of-order response can never roll the snapshot
// back. A failed poll keeps the previous snapshot live.
type Poller struct {
	repo     interfaces.SnapshotRepository
	feed     interfaces.FeedClient
	table    *model.TypeTable
	interval time.Duration
	limit    int
	clock    func() time.Time
}

// PollerOption is a functional option for configuring Poller
type PollerOption func(*Poller)

// WithPollerClock sets the time source used for timestamp substitution
func WithPollerClock(clock func() time.Time) PollerOption {
	return func(p *Poller) {
		p.clock = clock
	}
}

// NewPoller creates a new feed poller
func NewPoller(repo interfaces.SnapshotRepository, feed interfaces.FeedClient, table *model.TypeTable, interval time.Duration, limit int, opts ...PollerOption) *Poller {
	p := &Poller{
		repo:     repo,
		feed:     feed,
		table:    table,
		interval: interval,
		limit:    limit,
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start runs the poll loop until the context is cancelled. The first
// refresh happens immediately so the console is usable before the first
// tick.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		if err := p.Refresh(ctx); err != nil {
			apperr.Handle(ctx, err)
		}

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				ctxlog.From(ctx).Info("feed poller stopped")
				return
			case <-ticker.C:
				if err := p.Refresh(ctx); err != nil {
					apperr.Handle(ctx, err)
				}
			}
		}
	}()
}

// Refresh performs one poll: fetch, normalize, replace wholesale
func (p *Poller) Refresh(ctx context.Context) error {
	seq := p.repo.IssueSeq(ctx)

	events, err := p.feed.FetchEvents(ctx, p.limit)
	if err != nil {
		return goerr.Wrap(err, "feed refresh failed",
			goerr.V("seq", seq))
	}

	logger := ctxlog.From(ctx)
	now := p.clock()
	incidents := make([]*model.Incident, 0, len(events))
	for _, ev := range events {
		inc, notes := model.NormalizeEvent(ev, p.table, now)
		for _, note := range notes {
			// Data-quality channel: corrections are silent to the
			// operator but observable here
			logger.Debug("normalization correction",
				"eventID", ev.EventID,
				"note", note,
			)
		}
		incidents = append(incidents, inc)
	}

	applied, err := p.repo.Replace(ctx, seq, events, incidents)
	if err != nil {
		return goerr.Wrap(err, "failed to replace snapshot",
			goerr.V("seq", seq))
	}
	if !applied {
		logger.Debug("superseded refresh discarded", "seq", seq)
		return nil
	}

	logger.Debug("snapshot refreshed",
		"seq", seq,
		"events", len(events),
	)
	return nil
}
