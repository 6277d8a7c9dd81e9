package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/interfaces"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
	"github.com/reliefops/kestrel/pkg/utils/async"
)

const (
	defaultFlashTTL = time.Second

	// dispatchMessage is what the upstream records on the case timeline
	// when a responder is dispatched from the console
	dispatchMessage = "Responder dispatched from coordination console"
)

// Console is the single owner of the operator view state. Intents and
// projections go through its mutex, which makes the engine the one
// actor the concurrency contract asks for; the snapshot itself lives in
// the repository and is only read here.
type Console struct {
	repo interfaces.SnapshotRepository
	feed interfaces.FeedClient

	mu    sync.Mutex
	state *model.ViewState

	clock    func() time.Time
	flashTTL time.Duration
}

// ConsoleOption is a functional option for configuring Console
type ConsoleOption func(*Console)

// WithClock sets the time source, used by tests for deterministic
// flash expiry and analytics windows
func WithClock(clock func() time.Time) ConsoleOption {
	return func(c *Console) {
		c.clock = clock
	}
}

// WithFlashTTL sets the duration of the transient reveal highlight
func WithFlashTTL(ttl time.Duration) ConsoleOption {
	return func(c *Console) {
		c.flashTTL = ttl
	}
}

// NewConsole creates a new console engine
func NewConsole(repo interfaces.SnapshotRepository, feed interfaces.FeedClient, opts ...ConsoleOption) *Console {
	c := &Console{
		repo:     repo,
		feed:     feed,
		state:    model.NewViewState(),
		clock:    time.Now,
		flashTTL: defaultFlashTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a copy of the current view state
func (c *Console) State() *model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

// Views projects the current snapshot through the view state. The
// stabilized selection is written back so a self-healed selection
// persists across reads, and an expired flash is dropped from state.
func (c *Console) Views(ctx context.Context) *model.DerivedViews {
	incidents := c.repo.Incidents(ctx)
	now := c.clock()

	c.mu.Lock()
	defer c.mu.Unlock()

	views := Project(incidents, c.state, now)

	if views.SelectedIncidentID != c.state.SelectedIncidentID {
		ctxlog.From(ctx).Debug("selection self-healed",
			"previous", c.state.SelectedIncidentID,
			"selected", views.SelectedIncidentID,
		)
		c.state = c.state.WithSelected(views.SelectedIncidentID)
	}
	if c.state.FlashID != "" && !now.Before(c.state.FlashExpiresAt) {
		c.state = c.state.WithFlashCleared()
	}

	return views
}

// Analytics aggregates the historical slice of the current filtered set
func (c *Console) Analytics(ctx context.Context) *model.Analytics {
	views := c.Views(ctx)
	return ComputeAnalytics(views.Historical, c.clock())
}

// Select sets the selected incident unconditionally
func (c *Console) Select(ctx context.Context, id types.IncidentID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.WithSelected(id)
}

// ToggleType symmetrically adds or removes a type from the filter
func (c *Console) ToggleType(ctx context.Context, t types.IncidentType) error {
	if !t.IsValid() {
		return goerr.New("invalid incident type", goerr.V("type", t))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.WithTypeToggled(t)
	return nil
}

// ClearTypes empties the type filter
func (c *Console) ClearTypes(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.WithTypesCleared()
}

// SetViewMode switches the console view mode
func (c *Console) SetViewMode(ctx context.Context, mode types.ViewMode) error {
	if !mode.IsValid() {
		return goerr.New("invalid view mode", goerr.V("mode", mode))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.WithViewMode(mode)
	return nil
}

// ToggleRecentExpanded flips the recent-arrivals expansion
func (c *Console) ToggleRecentExpanded(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.WithRecentExpanded(!c.state.RecentExpanded)
}

// Dispatch records the responder in the local overlay and forwards the
// command upstream fire-and-forget. The overlay is optimistic: it may
// run ahead of upstream truth until the next refresh, and it is kept
// even when the upstream call fails (the failure is logged, not rolled
// back).
func (c *Console) Dispatch(ctx context.Context, incidentID types.IncidentID, responderID types.ResponderID) error {
	if responderID == "" {
		return goerr.New("responder ID is empty")
	}

	if _, err := c.repo.GetIncident(ctx, incidentID); err != nil {
		return goerr.Wrap(err, "cannot dispatch to unknown incident")
	}
	caseID, err := c.repo.CaseID(ctx, incidentID)
	if err != nil {
		return goerr.Wrap(err, "cannot resolve case for dispatch")
	}

	c.mu.Lock()
	c.state = c.state.WithDispatch(incidentID, responderID)
	c.mu.Unlock()

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := c.feed.Respond(ctx, caseID, responderID, dispatchMessage); err != nil {
			return goerr.Wrap(err, "upstream dispatch failed; local overlay kept",
				goerr.V("incidentID", incidentID),
				goerr.V("responderID", responderID))
		}
		return nil
	})

	return nil
}

// MarkResolved forwards the resolve command upstream. Local state is
// deliberately not flipped: the next feed refresh is the source of
// truth, so console and upstream cannot diverge silently.
func (c *Console) MarkResolved(ctx context.Context, incidentID types.IncidentID) error {
	caseID, err := c.repo.CaseID(ctx, incidentID)
	if err != nil {
		return goerr.Wrap(err, "cannot resolve case for completion")
	}

	if err := c.feed.Complete(ctx, caseID); err != nil {
		return goerr.Wrap(err, "failed to complete case upstream",
			goerr.V("incidentID", incidentID),
			goerr.V("caseID", caseID))
	}

	return nil
}

// SelectAndReveal handles an external selection signal (map click,
// recent-arrivals click): it selects the incident, starts the transient
// flash highlight, and returns the directive telling the presentation
// layer which section to expand and scroll once the state update has
// rendered. The flash expires after the configured TTL regardless of
// further state changes.
func (c *Console) SelectAndReveal(ctx context.Context, id types.IncidentID) (*model.RevealDirective, error) {
	inc, err := c.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot reveal unknown incident")
	}

	section := model.SectionPriority
	switch {
	case inc.IsHistorical():
		section = model.SectionHistorical
	case inc.P2P:
		section = model.SectionPeer
	}

	c.mu.Lock()
	c.state = c.state.WithSelected(id).WithFlash(id, c.clock().Add(c.flashTTL))
	c.mu.Unlock()

	return &model.RevealDirective{
		IncidentID: id,
		Section:    section,
	}, nil
}
