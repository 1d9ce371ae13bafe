// Package snapshot décrit le JSON brut renvoyé par le site du concours
// et sa validation avant classement.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

// ErrInvalidSnapshot le document n'a pas la forme attendue
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot dump complet d'un classement privé à un instant donné.
// Les membres restent bruts pour être validés un par un.
type Snapshot struct {
	Event     string                     `json:"event,omitempty"`
	OwnerID   int                        `json:"owner_id,omitempty"`
	Members   map[string]json.RawMessage `json:"members"`
	Timestamp float64                    `json:"timestamp"`
}

// Milestone une étoile obtenue
type Milestone struct {
	GetStarTS *int64 `json:"get_star_ts"`
	StarIndex int64  `json:"star_index,omitempty"`
}

// MemberEntry entrée brute d'un participant
type MemberEntry struct {
	ID                 int                             `json:"id"`
	Name               *string                         `json:"name"`
	Stars              int                             `json:"stars"`
	LocalScore         int                             `json:"local_score"`
	GlobalScore        int                             `json:"global_score"`
	LastStarTS         int64                           `json:"last_star_ts"`
	CompletionDayLevel map[string]map[string]Milestone `json:"completion_day_level"`
}

// DayLevel étoiles validées d'un jour
type DayLevel struct {
	Day      int
	FirstTS  *int64
	SecondTS *int64
}

// Entry participant validé, prêt pour le classement
type Entry struct {
	ID    int
	Name  string
	Stars int
	Days  []DayLevel // triés par jour
}

// Decode parse un document JSON complet
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snap, nil
}

// FetchedAt date de récupération du snapshot
func (s *Snapshot) FetchedAt() time.Time {
	if s.Timestamp <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(s.Timestamp)
	return time.Unix(int64(sec), int64(frac*1e9))
}

// Stamp enregistre l'instant de récupération
func (s *Snapshot) Stamp(now time.Time) {
	s.Timestamp = float64(now.UnixNano()) / 1e9
}

// Entries valide chaque membre indépendamment.
// Une entrée invalide est ignorée et reportée dans skipped, les autres sont conservées.
// Le résultat est trié par identifiant pour rester déterministe.
func (s *Snapshot) Entries() (entries []Entry, skipped map[string]error) {
	skipped = make(map[string]error)
	if s == nil {
		return nil, skipped
	}

	for key, raw := range s.Members {
		entry, err := ParseEntry(raw)
		if err != nil {
			skipped[key] = err
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, skipped
}

// ParseEntry valide l'entrée d'un participant
func ParseEntry(raw json.RawMessage) (Entry, error) {
	var m MemberEntry
	if err := json.Unmarshal(raw, &m); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if m.ID <= 0 {
		return Entry{}, fmt.Errorf("%w: missing member id", ErrInvalidSnapshot)
	}
	if m.Stars < 0 {
		return Entry{}, fmt.Errorf("%w: negative star count for member %d", ErrInvalidSnapshot, m.ID)
	}

	entry := Entry{ID: m.ID, Stars: m.Stars}
	if m.Name != nil {
		entry.Name = *m.Name
	}

	for key, level := range m.CompletionDayLevel {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > utils.NumberOfDays {
			return Entry{}, fmt.Errorf("%w: invalid day %q for member %d", ErrInvalidSnapshot, key, m.ID)
		}

		dl := DayLevel{Day: day}
		for part, milestone := range level {
			switch part {
			case "1":
				dl.FirstTS = milestone.GetStarTS
			case "2":
				dl.SecondTS = milestone.GetStarTS
			default:
				return Entry{}, fmt.Errorf("%w: invalid part %q on day %d for member %d", ErrInvalidSnapshot, part, day, m.ID)
			}
		}
		// pas de deuxième étoile sans la première
		if dl.FirstTS == nil {
			dl.SecondTS = nil
		}
		entry.Days = append(entry.Days, dl)
	}

	sort.Slice(entry.Days, func(i, j int) bool {
		return entry.Days[i].Day < entry.Days[j].Day
	})
	return entry, nil
}
