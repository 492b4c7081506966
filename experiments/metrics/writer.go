package metrics

import (
	"encoding/csv"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"
)

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "seed", "starting_player", "winner", "turns", "points1", "points2",
		"builds1", "builds2", "refusals", "start_time", "end_time", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.StartingPlayer),
			strconv.Itoa(r.Winner),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Points[0]),
			strconv.Itoa(r.Points[1]),
			strconv.Itoa(r.Builds[0]),
			strconv.Itoa(r.Builds[1]),
			strconv.Itoa(r.Refusals),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

// WriteEventCounts writes one row per game and event, dice events first.
func (w *Writer) WriteEventCounts(records []GameRecord) error {
	var rows [][]string
	for _, r := range records {
		for _, src := range []struct {
			kind   string
			counts map[string]int
		}{{"dice", r.DiceEvents}, {"card", r.CardEvents}} {
			for _, name := range slices.Sorted(maps.Keys(src.counts)) {
				rows = append(rows, []string{
					strconv.Itoa(r.ID), src.kind, name, strconv.Itoa(src.counts[name]),
				})
			}
		}
	}
	return w.write("event_counts.csv", []string{"game", "kind", "event", "count"}, rows)
}
