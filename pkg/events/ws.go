package events

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsBacklogLimit = 500
)

// StreamHandler upgrades the request to a websocket and streams envelopes as
// JSON text frames. With ?after=<sequence> and a non-nil feed, the stored
// backlog is replayed first; clients dedupe on the envelope id.
func StreamHandler(hub *Hub, feed Feed, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
		if err != nil {
			logger.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "stream closed")

		// Reads are not expected; CloseRead handles control frames and cancels ctx on close.
		ctx := conn.CloseRead(r.Context())

		updates, cancel := hub.Subscribe(0)
		defer cancel()

		if err := stream(ctx, conn, feed, r.URL.Query().Get("after"), updates); err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				logger.Warn("event stream failed", zap.Error(err))
				_ = conn.Close(websocket.StatusInternalError, "stream error")
			}
		}
	}
}

func stream(ctx context.Context, conn *websocket.Conn, feed Feed, after string, updates <-chan Envelope) error {
	if after = strings.TrimSpace(after); after != "" && feed != nil {
		seq, err := strconv.ParseInt(after, 10, 64)
		if err == nil {
			backlog, err := feed.ListEvents(ctx, seq, wsBacklogLimit)
			if err != nil {
				return err
			}
			for _, rec := range backlog {
				if err := writeFrame(ctx, conn, rec); err != nil {
					return err
				}
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeFrame(ctx, conn, env); err != nil {
				return err
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
