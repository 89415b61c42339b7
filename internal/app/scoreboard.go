package app

import (
	"math"
	"strconv"

	"go-run-branches/internal/component"
	"go-run-branches/internal/event"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scoreboard держит готовые строки для HUD и пересчитывает их только по событиям.
type Scoreboard struct {
	stats   *component.Stats
	printer *message.Printer

	ScoreText     string
	HighScoreText string
	LevelText     string
	CatsLeft      int
}

func NewScoreboard(stats *component.Stats) *Scoreboard {
	sb := &Scoreboard{
		stats:   stats,
		printer: message.NewPrinter(language.English),
	}
	sb.PrepAll()
	return sb
}

// FormatScore округляет счёт до десятков (половины — к чётному) и разделяет тысячи.
func (sb *Scoreboard) FormatScore(score int) string {
	rounded := int(math.RoundToEven(float64(score)/10) * 10)
	return sb.printer.Sprintf("%d", rounded)
}

func (sb *Scoreboard) PrepScore() {
	sb.ScoreText = sb.FormatScore(sb.stats.Score)
}

func (sb *Scoreboard) PrepHighScore() {
	sb.HighScoreText = sb.FormatScore(sb.stats.HighScore)
}

func (sb *Scoreboard) PrepLevel() {
	sb.LevelText = strconv.Itoa(sb.stats.Level)
}

func (sb *Scoreboard) PrepCats() {
	sb.CatsLeft = sb.stats.CatsLeft
}

func (sb *Scoreboard) PrepAll() {
	sb.PrepScore()
	sb.PrepHighScore()
	sb.PrepLevel()
	sb.PrepCats()
}

func (sb *Scoreboard) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScoreChanged:
		sb.PrepScore()
	case event.HighScoreChanged:
		sb.PrepHighScore()
	case event.LevelChanged:
		sb.PrepLevel()
	case event.LivesChanged:
		sb.PrepCats()
	case event.GameStarted:
		sb.PrepAll()
	}
}
