package engine

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// ErrEmptyBackup is returned when a restore blob contains no tracker keys.
var ErrEmptyBackup = errors.New("backup contains no tracker keys")

// ExportBackup serializes every namespaced key verbatim: a JSON object
// mapping full key names to their raw stored JSON strings.
func (s *Service) ExportBackup(ctx context.Context) ([]byte, error) {
	keys, err := s.store.Keys(ctx, storage.Prefix)
	if err != nil {
		return nil, err
	}
	backup := map[string]string{}
	for _, key := range keys {
		raw, found, err := s.store.ReadRaw(ctx, key)
		if err != nil {
			return nil, err
		}
		if found {
			backup[key] = raw
		}
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup encode: %w", err)
	}
	return data, nil
}

// RestoreBackup applies a backup blob. Only keys under the tracker namespace
// are touched; restore is additive and overwriting, never deleting. The blob
// is parsed and migrated completely before any write, and the writes land in
// one transaction, so a fatal parse error commits nothing.
func (s *Service) RestoreBackup(ctx context.Context, blob []byte) error {
	var backup map[string]json.RawMessage
	if err := json.Unmarshal(blob, &backup); err != nil {
		return fmt.Errorf("backup parse: %w", err)
	}

	entries := map[string]string{}
	for key, raw := range backup {
		if !strings.HasPrefix(key, storage.Prefix) {
			continue
		}
		// Values are normally JSON strings holding the stored document, but
		// older exports embedded the document directly.
		value := string(raw)
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err == nil {
			value = unquoted
		}
		if key == fullKey(keyLearnings) {
			value = migrateLearnings(value)
		}
		entries[key] = value
	}

	if len(entries) == 0 {
		return ErrEmptyBackup
	}
	return s.store.ApplyAll(ctx, entries)
}

// migrateLearnings rewrites legacy learning entries: "content" is populated
// from the old "text" field and "tags" always becomes an array. Unknown
// fields pass through untouched; a value that is not an array is left as-is.
func migrateLearnings(value string) string {
	var entries []map[string]any
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return value
	}
	for _, entry := range entries {
		content, _ := entry["content"].(string)
		if content == "" {
			if text, ok := entry["text"].(string); ok {
				content = text
			}
		}
		entry["content"] = content
		if _, ok := entry["tags"].([]any); !ok {
			entry["tags"] = []any{}
		}
	}
	migrated, err := json.Marshal(entries)
	if err != nil {
		return value
	}
	return string(migrated)
}

// ExportCSV writes one row per activity-log entry plus one row per task,
// discovering log keys by pattern-matching "{category}_{date}" names.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	keys, err := s.store.Keys(ctx, storage.Prefix)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Type", "Details", "Value", "Unit"}); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}

	for _, key := range keys {
		suffix := strings.TrimPrefix(key, storage.Prefix)
		parts := strings.SplitN(suffix, "_", 2)
		if len(parts) == 2 {
			cat := Category(parts[0])
			if cat.IsValid() {
				logs, err := s.readLogs(ctx, key)
				if err != nil {
					return err
				}
				for _, rec := range logs {
					for _, row := range csvRows(cat, parts[1], rec) {
						if err := cw.Write(row); err != nil {
							return fmt.Errorf("csv write: %w", err)
						}
					}
				}
			}
		}

		if suffix == keyTasks {
			tasks, err := s.Tasks(ctx)
			if err != nil {
				return err
			}
			for _, t := range tasks {
				status := "pending"
				if t.Completed {
					status = "done"
				}
				date, _, _ := strings.Cut(t.CreatedAt, "T")
				row := []string{date, "Task", fmt.Sprintf("%s (%s)", t.Title, status), t.Priority, "priority"}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("csv write: %w", err)
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}

func csvRows(cat Category, date string, rec storage.Record) [][]string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	switch cat {
	case CategoryStudy:
		details := rec.Topic
		if details == "" {
			details = "General"
		}
		return [][]string{{date, string(cat), details, num(rec.Hours), "hours"}}
	case CategoryWorkout:
		details := rec.Type
		if details == "" {
			details = "Exercise"
		}
		return [][]string{{date, string(cat), details, num(rec.Mins), "mins"}}
	case CategoryWellness:
		var rows [][]string
		if rec.Water > 0 {
			rows = append(rows, []string{date, string(cat), "Water", num(rec.Water), "litres"})
		}
		if rec.Meditation > 0 {
			rows = append(rows, []string{date, string(cat), "Meditation", num(rec.Meditation), "mins"})
		}
		return rows
	case CategorySleep:
		details := "Sleep Log"
		if rec.StartTime != "" && rec.EndTime != "" {
			details = rec.StartTime + " to " + rec.EndTime
		}
		return [][]string{{date, string(cat), details, num(rec.Hours), "hours"}}
	case CategoryDistractions:
		details := rec.Name
		if details == "" {
			details = "Unknown"
		}
		return [][]string{{date, string(cat), details, num(rec.Mins), "mins"}}
	default:
		return nil
	}
}
