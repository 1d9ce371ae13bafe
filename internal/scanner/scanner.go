package scanner

import (
	"fmt"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/google/uuid"
)

// Row ligne SQL scannable (pgx.Row, pgx.Rows)
type Row interface {
	Scan(dest ...interface{}) error
}

// ScanArchivedSnapshot scanne une ligne SQL vers un ArchivedSnapshot.
// L'identifiant est lu en texte puis converti.
func ScanArchivedSnapshot(row Row) (*model.ArchivedSnapshot, error) {
	var s model.ArchivedSnapshot
	var id string

	err := row.Scan(
		&id, &s.Year, &s.BoardID, &s.FetchedAt,
		&s.MemberCount, &s.Payload, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot id %q: %w", id, err)
	}

	return &s, nil
}
