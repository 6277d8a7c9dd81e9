package feed_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reliefops/kestrel/pkg/service/feed"
)

func TestFetchEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the live event feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodGet)
			gt.Equal(t, r.URL.Path, "/events/live")
			gt.Equal(t, r.URL.Query().Get("limit"), "300")

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{
					"event_id":      "ev-1",
					"case_id":       "case-1",
					"description":   "Trapped in elevator",
					"latitude":      59.33,
					"longitude":     18.07,
					"timestamp":     "2026-08-28T10:30:00Z",
					"case_severity": 4,
					"case_status":   "Open",
					"case_category": "rescue",
					"p2p":           false,
					"confidence":    92,
				},
			})
		}))
		defer server.Close()

		client := feed.New(server.URL)
		events, err := client.FetchEvents(ctx, 300)
		gt.NoError(t, err)
		gt.Equal(t, len(events), 1)
		gt.Equal(t, events[0].EventID, "ev-1")
		gt.Equal(t, events[0].CaseSeverity, 4)
		gt.V(t, events[0].Confidence).NotNil()
		gt.Equal(t, *events[0].Confidence, 92)
		gt.V(t, events[0].CompletedAt).Nil()
	})

	t.Run("fails on non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "database unavailable", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := feed.New(server.URL)
		_, err := client.FetchEvents(ctx, 300)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("unexpected status")
	})

	t.Run("fails on malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := feed.New(server.URL)
		_, err := client.FetchEvents(ctx, 300)
		gt.Error(t, err)
	})
}

func TestRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the responder with X-User-Id header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodPost)
			gt.Equal(t, r.URL.Path, "/cases/case-1/respond")
			gt.Equal(t, r.Header.Get("X-User-Id"), "responder-9")

			var body map[string]string
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.S(t, body["message"]).Contains("dispatched")

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := feed.New(server.URL)
		gt.NoError(t, client.Respond(ctx, "case-1", "responder-9", "Responder dispatched"))
	})

	t.Run("rejects empty identifiers", func(t *testing.T) {
		client := feed.New("http://unused")
		gt.Error(t, client.Respond(ctx, "", "r1", "msg"))
		gt.Error(t, client.Respond(ctx, "case-1", "", "msg"))
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to the complete endpoint", func(t *testing.T) {
		var called bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			gt.Equal(t, r.Method, http.MethodPost)
			gt.Equal(t, r.URL.Path, "/cases/case-7/complete")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := feed.New(server.URL)
		gt.NoError(t, client.Complete(ctx, "case-7"))
		gt.B(t, called).True()
	})

	t.Run("surfaces upstream rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "case not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := feed.New(server.URL)
		err := client.Complete(ctx, "case-7")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("rejected")
	})
}
