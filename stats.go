package main

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// GroupSize is the number of records folded into one grouped record.
const GroupSize = 100

// GameStats keeps the finished games of a session in memory. Once GroupSize
// records share a compression level they are folded into a single record one
// level up.
type GameStats struct {
	Games     []GameRecord
	groupSize int
	mutex     sync.RWMutex
}

// GameRecord is either one game (GamesCount 1) or a group of games.
type GameRecord struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

func NewGameStats(groupSize int) *GameStats {
	if groupSize < 2 {
		groupSize = GroupSize
	}
	return &GameStats{
		Games:     make([]GameRecord, 0),
		groupSize: groupSize,
	}
}

func (s *GameStats) AddGame(id string, score int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		ID:              id,
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	})

	s.groupGames()
}

func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		records := make([]GameRecord, 0)
		for _, g := range s.Games {
			if g.CompressionIndex == level {
				records = append(records, g)
			}
		}
		if len(records) < s.groupSize {
			break
		}

		var newRecords []GameRecord
		for i := 0; i < len(records); i += s.groupSize {
			end := i + s.groupSize
			if end > len(records) {
				newRecords = append(newRecords, records[i:]...)
				break
			}
			newRecords = append(newRecords, mergeRecords(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(s.Games))
		for _, g := range s.Games {
			if g.CompressionIndex != level {
				remaining = append(remaining, g)
			}
		}
		s.Games = append(remaining, newRecords...)
	}
}

func mergeRecords(group []GameRecord, level int) GameRecord {
	merged := GameRecord{
		ID:               uuid.New().String(),
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	scores := make([]float64, len(group))
	durations := make([]float64, len(group))
	weights := make([]float64, len(group))
	var medians []float64
	for i, g := range group {
		if g.MaxScore > merged.MaxScore {
			merged.MaxScore = g.MaxScore
		}
		if g.MinScore < merged.MinScore {
			merged.MinScore = g.MinScore
		}
		if g.MaxDuration > merged.MaxDuration {
			merged.MaxDuration = g.MaxDuration
		}
		if g.MinDuration < merged.MinDuration {
			merged.MinDuration = g.MinDuration
		}
		if g.StartTime.Before(merged.StartTime) {
			merged.StartTime = g.StartTime
		}
		if g.EndTime.After(merged.EndTime) {
			merged.EndTime = g.EndTime
		}
		scores[i] = g.AverageScore
		durations[i] = g.AverageDuration
		weights[i] = float64(g.GamesCount)
		merged.GamesCount += g.GamesCount
		for j := 0; j < g.GamesCount; j++ {
			medians = append(medians, g.MedianScore)
		}
	}

	merged.AverageScore = stat.Mean(scores, weights)
	merged.AverageDuration = stat.Mean(durations, weights)
	merged.MedianScore = median(medians)
	return merged
}

// median sorts values in place.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// weighted returns one value per record with its games count as weight.
func (s *GameStats) weighted(value func(GameRecord) float64) (values, weights []float64) {
	values = make([]float64, len(s.Games))
	weights = make([]float64, len(s.Games))
	for i, g := range s.Games {
		values[i] = value(g)
		weights[i] = float64(g.GamesCount)
	}
	return values, weights
}

func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, g := range s.Games {
		total += g.GamesCount
	}
	return total
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	return stat.Mean(s.weighted(func(g GameRecord) float64 { return g.AverageScore }))
}

func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var all []float64
	for _, g := range s.Games {
		for i := 0; i < g.GamesCount; i++ {
			all = append(all, g.MedianScore)
		}
	}
	return median(all)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	maxScore := s.Games[0].MaxScore
	for _, g := range s.Games {
		if g.MaxScore > maxScore {
			maxScore = g.MaxScore
		}
	}
	return maxScore
}

// GetAverageDuration is in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	return stat.Mean(s.weighted(func(g GameRecord) float64 { return g.AverageDuration }))
}

func (s *GameStats) GetMaxDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	maxDuration := s.Games[0].MaxDuration
	for _, g := range s.Games {
		if g.MaxDuration > maxDuration {
			maxDuration = g.MaxDuration
		}
	}
	return maxDuration
}
