package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"bitacora/mediafeed/internal/media"
)

// LoadGroupsCSV reads playlist groups from a CSV file with columns
// id, name, playlist_id. An empty playlist_id means the group covers
// the channel's uploads playlist.
func LoadGroupsCSV(csvPath string) ([]media.Group, error) {
	log.Info().Str("csv", csvPath).Msg("Loading playlist groups")

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open groups CSV: %w", err)
	}
	defer f.Close()

	groups, err := ParseGroups(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse groups CSV: %w", err)
	}

	log.Info().Int("groups", len(groups)).Msg("Playlist groups loaded")
	return groups, nil
}

// ParseGroups parses playlist groups from CSV data.
func ParseGroups(csvData io.Reader) ([]media.Group, error) {
	reader := csv.NewReader(csvData)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	log.Debug().Strs("header", header).Msg("CSV header read")

	idIdx := findColumnIndex(header, "id")
	nameIdx := findColumnIndex(header, "name")
	playlistIdx := findColumnIndex(header, "playlist_id")

	for column, idx := range map[string]int{"id": idIdx, "name": nameIdx, "playlist_id": playlistIdx} {
		if idx < 0 {
			return nil, fmt.Errorf("required column '%s' not found in CSV header", column)
		}
	}

	var groups []media.Group
	seen := make(map[string]bool)
	lineCount := 1 // Header was already read

	for {
		lineCount++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("line", lineCount).Msg("Error reading CSV line")
			continue
		}

		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			log.Debug().Int("line", lineCount).Msg("Skipping empty row")
			continue
		}

		group := media.Group{
			ID:         safeGetValue(record, idIdx),
			Name:       safeGetValue(record, nameIdx),
			PlaylistID: safeGetValue(record, playlistIdx),
		}

		if group.ID == "" {
			log.Warn().Int("line", lineCount).Msg("Skipping row with empty group id")
			continue
		}
		if group.ID == media.GroupAll {
			return nil, fmt.Errorf("line %d: group id %q is reserved for the aggregate view", lineCount, media.GroupAll)
		}
		if seen[group.ID] {
			log.Warn().Int("line", lineCount).Str("id", group.ID).Msg("Skipping duplicate group id")
			continue
		}
		seen[group.ID] = true

		if group.Name == "" {
			group.Name = group.ID
		}

		groups = append(groups, group)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no playlist groups found in CSV")
	}

	return groups, nil
}

func findColumnIndex(header []string, columnName string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), columnName) {
			return i
		}
	}
	return -1
}

// safeGetValue returns the trimmed value at the specified index, or an
// empty string if the index is out of bounds.
func safeGetValue(record []string, index int) string {
	if index >= 0 && index < len(record) {
		return strings.TrimSpace(record[index])
	}
	return ""
}
