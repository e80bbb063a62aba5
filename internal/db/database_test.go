package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestRecordAndListUploads(t *testing.T) {
	database := testDB(t)

	base := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	first := models.UploadRecord{Filename: "a.csv", SizeBytes: 100, UploadedAt: base, SampleCount: 5, Status: "ok"}
	second := models.UploadRecord{Filename: "b.xlsx", SizeBytes: 200, UploadedAt: base.Add(time.Minute), SampleCount: 0, Status: "no valid data rows found after cleaning"}

	require.NoError(t, database.RecordUpload(&first))
	require.NoError(t, database.RecordUpload(&second))
	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	uploads, err := database.ListUploads(10)
	require.NoError(t, err)
	require.Len(t, uploads, 2)

	// Newest first.
	assert.Equal(t, "b.xlsx", uploads[0].Filename)
	assert.Equal(t, "a.csv", uploads[1].Filename)
	assert.Equal(t, int64(100), uploads[1].SizeBytes)
	assert.Equal(t, 5, uploads[1].SampleCount)
	assert.Equal(t, "ok", uploads[1].Status)
	assert.True(t, uploads[1].UploadedAt.Equal(base))
}

func TestListUploadsLimit(t *testing.T) {
	database := testDB(t)

	for i := 0; i < 5; i++ {
		u := models.UploadRecord{Filename: "trip.csv", SizeBytes: 1, Status: "ok"}
		require.NoError(t, database.RecordUpload(&u))
	}

	uploads, err := database.ListUploads(3)
	require.NoError(t, err)
	assert.Len(t, uploads, 3)
}

func TestRecordUploadDefaultsTimestamp(t *testing.T) {
	database := testDB(t)

	u := models.UploadRecord{Filename: "trip.csv", SizeBytes: 1, Status: "ok"}
	require.NoError(t, database.RecordUpload(&u))

	uploads, err := database.ListUploads(1)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.False(t, uploads[0].UploadedAt.IsZero())
}

func TestGetStats(t *testing.T) {
	database := testDB(t)

	ok := models.UploadRecord{Filename: "a.csv", SizeBytes: 1, Status: "ok"}
	failed := models.UploadRecord{Filename: "b.csv", SizeBytes: 1, Status: "unreadable table"}
	require.NoError(t, database.RecordUpload(&ok))
	require.NoError(t, database.RecordUpload(&failed))

	stats, err := database.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats["total_uploads"])
	assert.Equal(t, int64(1), stats["failed_uploads"])
}
