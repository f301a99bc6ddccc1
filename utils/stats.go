package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished frame
func (s *Stats) Update(generation int, population int, frameDuration time.Duration) {
	s.TotalGenerations = generation
	if frameDuration > 0 {
		s.GenerationsPerSecond = 1.0 / frameDuration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the game has been running
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
