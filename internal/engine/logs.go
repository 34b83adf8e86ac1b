package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

type Category string

const (
	CategoryStudy        Category = "study"
	CategoryWorkout      Category = "workout"
	CategoryWellness     Category = "wellness"
	CategorySleep        Category = "sleep"
	CategoryDistractions Category = "distractions"
)

// Categories lists every log category in display order.
var Categories = []Category{
	CategoryStudy,
	CategoryWorkout,
	CategoryWellness,
	CategorySleep,
	CategoryDistractions,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStudy, CategoryWorkout, CategoryWellness, CategorySleep, CategoryDistractions:
		return true
	default:
		return false
	}
}

func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "distraction":
		s = "distractions"
	case "mindfulness":
		s = "wellness"
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", input)
	}
	return c, nil
}

func logKey(cat Category, dayKey string) string {
	return storage.Prefix + string(cat) + "_" + dayKey
}

// ValidateRecord checks that the payload carries the fields its category
// requires. Records are validated once here, at the append boundary.
func ValidateRecord(cat Category, rec storage.Record) error {
	switch cat {
	case CategoryStudy:
		if rec.Hours <= 0 {
			return fmt.Errorf("study log requires hours > 0")
		}
	case CategoryWorkout:
		if rec.Mins <= 0 {
			return fmt.Errorf("workout log requires mins > 0")
		}
	case CategoryWellness:
		if rec.Water <= 0 && rec.Meditation <= 0 {
			return fmt.Errorf("wellness log requires water or meditation")
		}
	case CategorySleep:
		if rec.Hours <= 0 {
			return fmt.Errorf("sleep log requires hours > 0")
		}
	case CategoryDistractions:
		if rec.Mins <= 0 {
			return fmt.Errorf("distraction log requires mins > 0")
		}
	default:
		return fmt.Errorf("invalid category: %q", cat)
	}
	return nil
}

// AppendActivity validates the record, stamps it, and appends it to today's
// log for the category. Logs are keyed by plain calendar date. Records are
// immutable once written; there is no update or delete.
func (s *Service) AppendActivity(ctx context.Context, cat Category, rec storage.Record) (storage.Record, error) {
	if err := ValidateRecord(cat, rec); err != nil {
		return storage.Record{}, err
	}
	now := s.now()
	rec.Timestamp = now.UTC().Format(time.RFC3339)

	key := logKey(cat, MidnightKey(now))
	logs, err := s.readLogs(ctx, key)
	if err != nil {
		return storage.Record{}, err
	}
	logs = append(logs, rec)
	if err := s.store.WriteJSON(ctx, key, logs); err != nil {
		return storage.Record{}, err
	}
	return rec, nil
}

// ReadDay returns the log entries for a category on the given day key,
// or an empty slice when nothing was logged.
func (s *Service) ReadDay(ctx context.Context, cat Category, dayKey string) ([]storage.Record, error) {
	return s.readLogs(ctx, logKey(cat, dayKey))
}

// readLogs is the single place that tolerates the legacy encoding where one
// record was stored un-wrapped instead of inside an array. Corrupt values
// degrade to an empty log rather than failing the read.
func (s *Service) readLogs(ctx context.Context, key string) ([]storage.Record, error) {
	raw, found, err := s.store.ReadRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []storage.Record{}, nil
	}
	return decodeLogs(raw), nil
}

func decodeLogs(raw string) []storage.Record {
	var logs []storage.Record
	if err := json.Unmarshal([]byte(raw), &logs); err == nil {
		return logs
	}
	var single storage.Record
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []storage.Record{single}
	}
	return []storage.Record{}
}
