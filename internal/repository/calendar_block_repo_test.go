package repository

import (
	"context"
	"testing"
	"time"

	"bridalbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testBlock(start, end time.Time, locationID string) *domain.CalendarBlock {
	return &domain.CalendarBlock{
		StartAt:    start,
		EndAt:      end,
		LocationID: locationID,
		Reason:     "maintenance",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCalendarBlockRepository_AnyCovering_HalfOpen(t *testing.T) {
	repo := NewCalendarBlockRepository(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 14, 13, 0, 0, 0, time.UTC)
	assert.NoError(t, repo.Create(ctx, testBlock(start, end, "downtown")))

	cases := []struct {
		at      time.Time
		covered bool
	}{
		{start, true},                    // start inclusive
		{start.Add(2 * time.Hour), true}, // interior
		{end.Add(-time.Minute), true},    // last covered minute
		{end, false},                     // end exclusive
		{start.Add(-time.Minute), false}, // before
	}
	for _, tc := range cases {
		covered, err := repo.AnyCovering(ctx, tc.at, "downtown")
		assert.NoError(t, err)
		assert.Equal(t, tc.covered, covered, "at %s", tc.at)
	}

	// block is scoped to downtown only
	covered, err := repo.AnyCovering(ctx, start, "uptown")
	assert.NoError(t, err)
	assert.False(t, covered)
}

func TestCalendarBlockRepository_AnyCovering_GlobalBlock(t *testing.T) {
	repo := NewCalendarBlockRepository(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, repo.Create(ctx, testBlock(start, end, "")))

	at := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	for _, loc := range []string{"downtown", "uptown"} {
		covered, err := repo.AnyCovering(ctx, at, loc)
		assert.NoError(t, err)
		assert.True(t, covered, "global block must cover %s", loc)
	}
}

func TestCalendarBlockRepository_ListRange(t *testing.T) {
	repo := NewCalendarBlockRepository(newTestDB(t))
	ctx := context.Background()

	july := testBlock(
		time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 14, 13, 0, 0, 0, time.UTC),
		"downtown",
	)
	assert.NoError(t, repo.Create(ctx, july))
	december := testBlock(
		time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC),
		"",
	)
	assert.NoError(t, repo.Create(ctx, december))
	uptownJuly := testBlock(
		time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 20, 18, 0, 0, 0, time.UTC),
		"uptown",
	)
	assert.NoError(t, repo.Create(ctx, uptownJuly))

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	// location query sees its own blocks plus globals, not other locations
	got, err := repo.ListRange(ctx, from, to, "downtown")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, july.ID, got[0].ID)

	// unscoped query sees every location within the range
	got, err = repo.ListRange(ctx, from, to, "")
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// the global december block shows up for any location in its range
	got, err = repo.ListRange(ctx, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "downtown")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, december.ID, got[0].ID)
}

func TestCalendarBlockRepository_Delete(t *testing.T) {
	repo := NewCalendarBlockRepository(newTestDB(t))
	ctx := context.Background()

	b := testBlock(
		time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 14, 13, 0, 0, 0, time.UTC),
		"downtown",
	)
	assert.NoError(t, repo.Create(ctx, b))

	ok, err := repo.Delete(ctx, b.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	covered, err := repo.AnyCovering(ctx, b.StartAt, "downtown")
	assert.NoError(t, err)
	assert.False(t, covered)
}
