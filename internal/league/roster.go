package league

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fortuna/pythia/internal/simulation"
)

// Lineup slots that never score.
const (
	SlotBench = "BE"
	SlotIR    = "IR"
)

// RosterEntry is one player on a fantasy roster.
type RosterEntry struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	ProTeam    string `json:"pro_team"`
	LineupSlot string `json:"lineup_slot"`
	Injured    bool   `json:"injured"`
	// StatsID is the box score athlete id when it differs from PlayerID.
	StatsID string `json:"stats_id,omitempty"`
}

// Eligible reports whether the entry may score, ignoring the schedule.
func (e RosterEntry) Eligible() bool {
	slot := strings.ToUpper(strings.TrimSpace(e.LineupSlot))
	if slot == SlotBench || slot == SlotIR {
		return false
	}
	return !e.Injured
}

// Team is a fantasy team and its roster.
type Team struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Entries []RosterEntry `json:"roster"`
}

//go:generate mockgen -package=mocks -destination=mocks/mock_schedule.go github.com/fortuna/pythia/internal/league Schedule

// Schedule reports which pro teams play on a day.
type Schedule interface {
	TeamsPlaying(ctx context.Context, day time.Time) (map[string]bool, error)
}

// Roster serves active rosters for a fixed set of teams. Schedule lookups
// are memoised per day for the life of the Roster.
type Roster struct {
	teams    map[string]Team
	byName   map[string]string
	schedule Schedule

	mu      sync.Mutex
	playing map[string]map[string]bool
}

// NewRoster indexes teams by id and by lower-case name.
func NewRoster(teams []Team, schedule Schedule) *Roster {
	r := &Roster{
		teams:    make(map[string]Team, len(teams)),
		byName:   make(map[string]string, len(teams)),
		schedule: schedule,
		playing:  make(map[string]map[string]bool),
	}
	for _, t := range teams {
		entries := make([]RosterEntry, len(t.Entries))
		copy(entries, t.Entries)
		for i := range entries {
			entries[i].ProTeam = CanonicalTeam(entries[i].ProTeam)
		}
		t.Entries = entries
		r.teams[t.ID] = t
		r.byName[strings.ToLower(strings.TrimSpace(t.Name))] = t.ID
	}
	return r
}

// Resolve finds a team by id or, failing that, by name.
func (r *Roster) Resolve(ref string) (Team, error) {
	if t, ok := r.teams[ref]; ok {
		return t, nil
	}
	if id, ok := r.byName[strings.ToLower(strings.TrimSpace(ref))]; ok {
		return r.teams[id], nil
	}
	return Team{}, fmt.Errorf("%w: %q", simulation.ErrUnknownTeam, ref)
}

// Teams returns every team ordered by id.
func (r *Roster) Teams() []Team {
	out := make([]Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Players returns the stats feed references of every rostered player.
func (r *Roster) Players() []simulation.PlayerRef {
	seen := make(map[string]bool)
	var refs []simulation.PlayerRef
	for _, t := range r.Teams() {
		for _, e := range t.Entries {
			if seen[e.PlayerID] {
				continue
			}
			seen[e.PlayerID] = true
			refs = append(refs, simulation.PlayerRef{PlayerID: e.PlayerID, StatsID: e.StatsID, ProTeam: e.ProTeam})
		}
	}
	return refs
}

// ActiveRoster implements simulation.RosterSource.
func (r *Roster) ActiveRoster(ctx context.Context, teamRef string, day time.Time) ([]string, error) {
	team, err := r.Resolve(teamRef)
	if err != nil {
		return nil, err
	}

	playing, err := r.teamsPlaying(ctx, day)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range team.Entries {
		if e.Eligible() && playing[e.ProTeam] {
			ids = append(ids, e.PlayerID)
		}
	}
	return ids, nil
}

func (r *Roster) teamsPlaying(ctx context.Context, day time.Time) (map[string]bool, error) {
	key := simulation.DayKey(day)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.playing[key]; ok {
		return cached, nil
	}

	raw, err := r.schedule.TeamsPlaying(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("teams playing on %s: %w", key, err)
	}

	playing := make(map[string]bool, len(raw))
	for code, ok := range raw {
		if ok {
			playing[CanonicalTeam(code)] = true
		}
	}
	r.playing[key] = playing
	return playing, nil
}

// LoadTeams reads a JSON array of teams from disk.
func LoadTeams(path string) ([]Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rosters: %w", err)
	}

	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("decoding rosters: %w", err)
	}
	return teams, nil
}

// StaticSchedule is a fixed day -> teams table.
type StaticSchedule map[string][]string

// TeamsPlaying implements Schedule.
func (s StaticSchedule) TeamsPlaying(_ context.Context, day time.Time) (map[string]bool, error) {
	playing := make(map[string]bool)
	for _, code := range s[simulation.DayKey(day)] {
		playing[CanonicalTeam(code)] = true
	}
	return playing, nil
}
