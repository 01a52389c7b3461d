// Package notify sends fire-and-forget HTTP notifications for wheel events.
// The primary use case is ntfy.sh, but any HTTP webhook works.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// DefaultTitle is the X-Title header used when no title is configured.
const DefaultTitle = "Wheel of Names"

// Notifier posts plain-text HTTP notifications when a spin settles.
type Notifier struct {
	url      string
	title    string
	onSettle bool
	client   *http.Client
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// New creates a Notifier. title is used as the X-Title header; if empty,
// DefaultTitle is used instead. A nil logger discards output.
func New(notifURL, title string, onSettle bool, logger *slog.Logger) *Notifier {
	if title == "" {
		title = DefaultTitle
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Notifier{
		url:      notifURL,
		title:    title,
		onSettle: onSettle,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Hook receives every controller event and fires an asynchronous POST for
// settled spins when enabled.
func (n *Notifier) Hook(e wheel.Event) {
	if e.Kind != wheel.EventSettled || !n.onSettle || n.url == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.post(Message(e))
	}()
}

// Wait blocks until in-flight posts finish.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Message renders the notification body for a settled spin.
func Message(e wheel.Event) string {
	msg := fmt.Sprintf("winner: %s", e.Name)
	if len(e.Names) > 0 {
		msg += fmt.Sprintf(" (%d names)", len(e.Names))
	}
	return msg
}

// post sends a plain-text POST to the configured URL. Failures are logged
// and otherwise ignored so they never interrupt the wheel.
func (n *Notifier) post(message string) {
	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(message))
	if err != nil {
		n.logger.Warn("notify: build request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Title", n.title)
	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("notify: post", "url", n.url, "error", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.logger.Warn("notify: unexpected status", "url", n.url, "status", resp.StatusCode)
	}
}
