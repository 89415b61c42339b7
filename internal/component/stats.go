package component

// Stats — игровая статистика.
type Stats struct {
	Score     int
	Level     int
	CatsLeft  int
	HighScore int // не сбрасывается между партиями
}

// Reset сбрасывает статистику новой партии.
func (s *Stats) Reset(catLimit int) {
	s.Score = 0
	s.Level = 1
	s.CatsLeft = catLimit
}
