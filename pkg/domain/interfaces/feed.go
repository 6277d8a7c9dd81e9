package interfaces

//go:generate moq -out mocks/feed_mock.go -pkg mocks . FeedClient

import (
	"context"

	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// FeedClient defines the boundary to the upstream emergency backend.
// The transport is an implementation detail of pkg/service/feed; the
// engine only sees these three operations.
type FeedClient interface {
	// FetchEvents pulls the latest geolocated event records, bounded by limit
	FetchEvents(ctx context.Context, limit int) ([]*model.RawEvent, error)

	// Respond offers a responder for the case (dispatch command)
	Respond(ctx context.Context, caseID types.CaseID, responderID types.ResponderID, message string) error

	// Complete marks the case resolved upstream
	Complete(ctx context.Context, caseID types.CaseID) error
}
