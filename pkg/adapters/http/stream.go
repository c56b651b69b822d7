package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/wire"
)

// allTopics is the subscription key that receives every plugin's events.
const allTopics = ""

// StreamManager fans invocation events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // PluginID -> Set of Channels
	logger      *slog.Logger
}

// NewStreamManager creates a StreamManager. A nil logger uses slog.Default.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a channel for events of pluginID, or of every plugin
// when pluginID is empty. The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(pluginID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[pluginID]; !ok {
		sm.subscribers[pluginID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[pluginID][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			if subs, ok := sm.subscribers[pluginID]; ok {
				delete(subs, ch)
				close(ch)
				if len(subs) == 0 {
					delete(sm.subscribers, pluginID)
				}
			}
		})
	}
}

// Broadcast sends msg to subscribers of pluginID and to those of every plugin.
// Slow subscribers miss messages rather than block the caller.
func (sm *StreamManager) Broadcast(pluginID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for _, topic := range []string{pluginID, allTopics} {
		for ch := range sm.subscribers[topic] {
			select {
			case ch <- msg:
			default:
				sm.logger.Warn("SSE: Client buffer full, dropping message", "plugin", pluginID)
			}
		}
		if pluginID == allTopics {
			break
		}
	}
}

// Hooks returns lifecycle hooks that broadcast every completed invocation.
func (sm *StreamManager) Hooks() host.LifecycleHooks {
	return host.LifecycleHooks{
		OnInvokeReturn: func(ctx context.Context, e *host.InvocationEvent) {
			payload := map[string]any{
				"id":          e.ID,
				"plugin_id":   e.PluginID,
				"operation":   e.Operation,
				"timestamp":   e.Timestamp,
				"duration_ns": e.Duration.Nanoseconds(),
				"is_error":    e.IsError,
			}
			if e.IsError {
				payload["error"] = e.Err.Error()
			} else {
				payload["result"] = e.Result
			}
			data, err := wire.Marshal(payload)
			if err != nil {
				sm.logger.Warn("SSE: event encode failed", "error", err)
				return
			}
			sm.Broadcast(e.PluginID, string(data))
		},
	}
}

// SubscribeEvents handles the GET /events request (SSE). The optional plugin
// query parameter narrows the stream to one plugin.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	pluginID := r.URL.Query().Get("plugin")
	s.logger.Debug("SSE: Subscribing to invocations", "plugin", pluginID)

	ch, cancel := s.Streams.Subscribe(pluginID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
