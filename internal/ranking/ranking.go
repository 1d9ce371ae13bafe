// Package ranking construit le classement d'une année à partir d'un snapshot.
package ranking

import (
	"sort"

	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/MassBabyGeek/advent-leaderboard/internal/snapshot"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

// BuildLeaderboard construit les membres classés d'un snapshot pour une année.
// Les membres sans étoile sont ignorés, les étoiles obtenues après la fin du concours ne comptent pas.
// Une entrée invalide est ignorée sans bloquer les autres.
func BuildLeaderboard(snap *snapshot.Snapshot, year int) []*model.Member {
	entries, skipped := snap.Entries()
	for key, err := range skipped {
		logger.Warning("Skipping member %s: %v", key, err)
	}

	members := make([]*model.Member, 0, len(entries))
	for _, entry := range entries {
		if entry.Stars == 0 {
			continue
		}
		members = append(members, buildMember(entry, year))
	}

	SortMembers(members)
	DeterminePositions(members)
	return members
}

// buildMember crée un membre avec ses 25 résultats, filtrés par la date de fin
func buildMember(entry snapshot.Entry, year int) *model.Member {
	results := make([]model.Result, utils.NumberOfDays)
	for i := range results {
		results[i] = model.NewResult(i + 1)
	}

	for _, level := range entry.Days {
		r := &results[level.Day-1]
		r.FirstTS = keepBeforeCutoff(year, level.FirstTS)
		r.SecondTS = keepBeforeCutoff(year, level.SecondTS)
		if r.FirstTS == nil {
			r.SecondTS = nil
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Day < results[j].Day
	})

	return &model.Member{
		ID:      entry.ID,
		Name:    model.DisplayName(entry.ID, entry.Name),
		Results: results,
	}
}

func keepBeforeCutoff(year int, ts *int64) *int64 {
	if ts == nil || !utils.IsBeforeCutoff(year, *ts) {
		return nil
	}
	v := *ts
	return &v
}

// SortMembers trie du meilleur au moins bon, l'ordre d'entrée est conservé en cas d'égalité
func SortMembers(members []*model.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return model.CompareMembers(members[i], members[j]) > 0
	})
}

// DeterminePositions attribue les positions d'une liste déjà triée.
// Les ex aequo partagent la position, le suivant reprend son rang réel (1, 1, 3).
func DeterminePositions(members []*model.Member) {
	for i, m := range members {
		if i > 0 && m.Equal(members[i-1]) {
			m.Position = members[i-1].Position
			continue
		}
		m.Position = i + 1
	}
}
