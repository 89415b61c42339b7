package app

import (
	"testing"

	"go-run-branches/internal/component"
	"go-run-branches/internal/event"
)

func TestFormatScore(t *testing.T) {
	sb := NewScoreboard(&component.Stats{})
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{50, "50"},
		{125, "120"},
		{135, "140"},
		{1234, "1,230"},
		{1250, "1,250"},
		{1234567, "1,234,570"},
	}
	for _, tt := range tests {
		if got := sb.FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreboardRefreshesOnEvents(t *testing.T) {
	stats := &component.Stats{Level: 1, CatsLeft: 3}
	sb := NewScoreboard(stats)

	stats.Score = 300
	stats.Level = 2
	stats.CatsLeft = 1
	if sb.ScoreText != "0" {
		t.Fatal("text changed before the event")
	}

	sb.OnEvent(event.Event{Type: event.ScoreChanged})
	sb.OnEvent(event.Event{Type: event.LevelChanged})
	sb.OnEvent(event.Event{Type: event.LivesChanged})

	if sb.ScoreText != "300" || sb.LevelText != "2" || sb.CatsLeft != 1 {
		t.Errorf("got %q %q %d", sb.ScoreText, sb.LevelText, sb.CatsLeft)
	}
}
