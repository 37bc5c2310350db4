package evaluation

import "fmt"

const (
	RatingMin = 1
	RatingMax = 5
)

// Ratings holds the ten scored dimensions of one evaluation.
type Ratings struct {
	Quality         int
	Productivity    int
	Technical       int
	Teamwork        int
	Initiative      int
	Punctuality     int
	Leadership      int
	Adaptability    int
	Communication   int
	ValuesAlignment int
}

func (r Ratings) values() [10]int {
	return [10]int{
		r.Quality,
		r.Productivity,
		r.Technical,
		r.Teamwork,
		r.Initiative,
		r.Punctuality,
		r.Leadership,
		r.Adaptability,
		r.Communication,
		r.ValuesAlignment,
	}
}

// Validate checks that every dimension lies in [RatingMin, RatingMax].
func (r Ratings) Validate() error {
	for _, v := range r.values() {
		if v < RatingMin || v > RatingMax {
			return fmt.Errorf("rating %d outside [%d, %d]", v, RatingMin, RatingMax)
		}
	}
	return nil
}

// FinalScore derives the evaluation score as the average of the ten
// dimensions on the same 1-5 scale. No rounding is applied here; the
// dashboard rounds only when reporting its aggregate.
func (r Ratings) FinalScore() float64 {
	sum := 0
	for _, v := range r.values() {
		sum += v
	}
	return float64(sum) / 10.0
}
