package handlers

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/localnerve/decideforme/internal/events"
)

func TestStreamEvents(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	ch := make(chan events.Topic, 2)
	ch <- events.SyncLogs
	ch <- events.AuthChange
	close(ch)

	streamEvents(w, ch, time.Hour)

	want := ": connected\n\n" +
		"event: sync-logs\ndata: sync-logs\n\n" +
		"event: authChange\ndata: authChange\n\n"
	if got := buf.String(); got != want {
		t.Errorf("Unexpected stream:\n%q\nwant:\n%q", got, want)
	}
}
