// Package history holds each player's completed-game fantasy scores for the season.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Game is one completed game. FantasyPoints is nil when the source had no score.
type Game struct {
	Date          string   `json:"date"`
	FantasyPoints *float64 `json:"fantasy_points"`
	Opponent      string   `json:"opponent,omitempty"`
	GameID        string   `json:"game_id,omitempty"`
}

// PlayerHistory is one player's season log.
type PlayerHistory struct {
	ESPNPlayerID int64  `json:"espn_player_id"`
	NBAPlayerID  int64  `json:"nba_player_id,omitempty"`
	Name         string `json:"name"`
	ProTeam      string `json:"proTeam"`
	Season       string `json:"season"`
	History      []Game `json:"history"`
}

// Document is the on-disk history file keyed by fantasy player id.
type Document map[string]PlayerHistory

// SeasonString names the season a day belongs to, e.g. "2025-26".
// Seasons roll over in October.
func SeasonString(day time.Time) string {
	start := day.Year()
	if day.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// FileName is the conventional history file name for a season.
func FileName(season string) string {
	return fmt.Sprintf("fantasy_player_history_%s.json", season)
}

// LoadFile reads a history document.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	doc := make(Document)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding history %s: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes doc to path through a temp file and rename.
func SaveFile(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing history: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}

// Merge appends games not already present, matching on game id or, for
// games without one, on date. It returns the number of games added.
func Merge(existing *PlayerHistory, fresh []Game) int {
	ids := make(map[string]bool, len(existing.History))
	dates := make(map[string]bool, len(existing.History))
	for _, g := range existing.History {
		if g.GameID != "" {
			ids[g.GameID] = true
		}
		dates[g.Date] = true
	}

	added := 0
	for _, g := range fresh {
		if g.GameID != "" && ids[g.GameID] {
			continue
		}
		if g.GameID == "" && dates[g.Date] {
			continue
		}
		existing.History = append(existing.History, g)
		if g.GameID != "" {
			ids[g.GameID] = true
		}
		dates[g.Date] = true
		added++
	}
	return added
}

// Points returns the non-null fantasy scores in file order.
func (p PlayerHistory) Points() []float64 {
	out := make([]float64, 0, len(p.History))
	for _, g := range p.History {
		if g.FantasyPoints != nil {
			out = append(out, *g.FantasyPoints)
		}
	}
	return out
}

// AppendGames merges games into the player's entry, creating it when absent.
func (d Document) AppendGames(_ context.Context, playerID string, games []Game) (int, error) {
	p := d[playerID]
	added := Merge(&p, games)
	d[playerID] = p
	return added, nil
}
