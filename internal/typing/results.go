package typing

import (
	"fmt"
	"math"
	"time"
)

// charsPerWord is the chunk size used by the speed metric.
const charsPerWord = 5.0

// Results summarizes a completed session.
type Results struct {
	Elapsed  time.Duration
	Speed    int
	Accuracy float64
}

// ElapsedSeconds returns the active duration in seconds.
func (r Results) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// AccuracyText renders accuracy with one decimal place.
func (r Results) AccuracyText() string {
	return fmt.Sprintf("%.1f", r.Accuracy)
}

// Compute derives speed and accuracy from the active duration, the expected
// input length, and the judgment counters.
func Compute(elapsed time.Duration, expectedLen int, c Counters) Results {
	if elapsed < 0 {
		elapsed = 0
	}
	res := Results{Elapsed: elapsed, Accuracy: 100}
	if secs := elapsed.Seconds(); secs > 0 {
		res.Speed = int(math.Round((float64(expectedLen) / charsPerWord) / (secs / 60)))
	}
	if c.Judged > 0 {
		acc := (1 - float64(c.Errors)/float64(c.Judged)) * 100
		res.Accuracy = math.Max(0, math.Min(100, acc))
	}
	return res
}
