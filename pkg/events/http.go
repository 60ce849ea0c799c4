package events

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	apphttp "github.com/chainsafe/htlc-escrow/pkg/app/http"
)

const (
	defaultFeedLimit = 100
	maxFeedLimit     = 1000
)

// FeedPage is a page of the event log. Next is the cursor for the following page.
type FeedPage struct {
	Events []Record `json:"events"`
	Next   int64    `json:"next"`
}

// RegisterRoutes registers the event feed and live stream endpoints.
func RegisterRoutes(r chi.Router, hub *Hub, feed Feed, logger *zap.Logger) {
	r.Get("/events", apphttp.HandleError(feedHandler(feed)))
	r.Get("/events/stream", StreamHandler(hub, feed, logger))
}

func feedHandler(feed Feed) apphttp.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()

		var after int64
		if v := q.Get("after"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				return apperrors.WithReason(apperrors.BadRequestError(err, "invalid after cursor"), "InvalidRequest")
			}
			after = n
		}

		limit := defaultFeedLimit
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return apperrors.WithReason(apperrors.BadRequestError(err, "invalid limit"), "InvalidRequest")
			}
			limit = min(n, maxFeedLimit)
		}

		records, err := feed.ListEvents(r.Context(), after, limit)
		if err != nil {
			return apperrors.GeneralError(fmt.Errorf("list events: %w", err))
		}

		next := after
		if len(records) > 0 {
			next = records[len(records)-1].Sequence
		}
		apphttp.WriteJSON(w, http.StatusOK, FeedPage{Events: records, Next: next})
		return nil
	}
}
