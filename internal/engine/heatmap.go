package engine

import "context"

// HeatmapCell is one day of the calendar heatmap. Count is an
// activity-density proxy (entry counts, not weighted measures); Level is the
// 0-4 shade bucket.
type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// ActivityHeatmap scores the last `days` calendar dates, oldest first. Per
// day the count is: study entries + workout entries + wellness entries with
// meditation or water + tasks completed that day.
func (s *Service) ActivityHeatmap(ctx context.Context, days int) ([]HeatmapCell, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	cells := make([]HeatmapCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		dateStr := MidnightKey(s.now().AddDate(0, 0, -i))
		score := 0

		study, err := s.ReadDay(ctx, CategoryStudy, dateStr)
		if err != nil {
			return nil, err
		}
		score += len(study)

		workout, err := s.ReadDay(ctx, CategoryWorkout, dateStr)
		if err != nil {
			return nil, err
		}
		score += len(workout)

		wellness, err := s.ReadDay(ctx, CategoryWellness, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range wellness {
			if r.Meditation > 0 || r.Water > 0 {
				score++
			}
		}

		score += countTasksDoneOn(tasks, dateStr)

		cells = append(cells, HeatmapCell{Date: dateStr, Count: score, Level: HeatLevel(score)})
	}
	return cells, nil
}

// HeatLevel buckets a day score into one of five shades.
func HeatLevel(score int) int {
	switch {
	case score == 0:
		return 0
	case score <= 2:
		return 1
	case score <= 4:
		return 2
	case score <= 6:
		return 3
	default:
		return 4
	}
}
