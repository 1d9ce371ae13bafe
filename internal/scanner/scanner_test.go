package scanner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *int:
			*p = r.values[i].(int)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *[]byte:
			*p = r.values[i].([]byte)
		}
	}
	return nil
}

func TestScanArchivedSnapshot(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	s, err := ScanArchivedSnapshot(fakeRow{values: []interface{}{
		id.String(), 2022, 1505617, now, 12, []byte(`{}`), now,
	}})
	require.NoError(t, err)

	assert.Equal(t, id, s.ID)
	assert.Equal(t, 2022, s.Year)
	assert.Equal(t, 1505617, s.BoardID)
	assert.Equal(t, 12, s.MemberCount)
	assert.Equal(t, []byte(`{}`), s.Payload)
}

func TestScanArchivedSnapshot_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := ScanArchivedSnapshot(fakeRow{err: boom})
	assert.ErrorIs(t, err, boom)

	now := time.Now()
	_, err = ScanArchivedSnapshot(fakeRow{values: []interface{}{
		"not-a-uuid", 2022, 1, now, 0, []byte(`{}`), now,
	}})
	assert.Error(t, err)
}
