package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID        string
	CreatedAt time.Time
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", at)

	params := CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(at))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	params := CursorParams{Cursor: "not-base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestNewCursorPaginationDetectsMore(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rows := []row{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(-time.Minute)},
		{ID: "c", CreatedAt: base.Add(-2 * time.Minute)},
	}

	// fetched with limit+1, so the third row only signals another page
	meta, page := NewCursorPagination(rows, 2,
		func(r row) string { return r.ID },
		func(r row) time.Time { return r.CreatedAt },
	)

	require.Len(t, page, 2)
	assert.True(t, meta.HasNext)
	require.NotNil(t, meta.NextCursor)

	params := CursorParams{Cursor: *meta.NextCursor}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", cursor.ID)
}

func TestCursorParamsValidateClamps(t *testing.T) {
	params := CursorParams{Limit: 0}
	params.Validate()
	assert.Equal(t, 15, params.Limit)
	assert.Equal(t, CursorDirectionNext, params.Direction)

	params = CursorParams{Limit: 500}
	params.Validate()
	assert.Equal(t, 100, params.Limit)
}
