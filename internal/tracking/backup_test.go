package tracking

import (
	"testing"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/structures"
	"timekeep/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newBackups(t *testing.T, keep int) *BackupManager {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)
	conf := &structures.Config{
		Backup: structures.BackupConfig{Dir: t.TempDir(), Keep: keep},
	}
	return NewBackupManager(conf, compressor, &testutil.MockLogger{})
}

func TestBackupManager_DisabledWithoutDir(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)
	b := NewBackupManager(&structures.Config{}, compressor, &testutil.MockLogger{})

	assert.False(t, b.Enabled())
	assert.NoError(t, b.Write(models.NewTimeData()))
	names, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestBackupManager_WriteAndRestore(t *testing.T) {
	b := newBackups(t, 5)
	data := models.NewTimeData()
	data.Sessions = append(data.Sessions, models.Session{
		ID: "s1", Project: "work",
		Start: at("2024-01-01T09:00:00Z"), End: at("2024-01-01T10:00:00Z"),
	})
	require.NoError(t, b.Write(data))

	names, err := b.List()
	require.NoError(t, err)
	require.Len(t, names, 1)

	restored, err := b.Restore(names[0])
	require.NoError(t, err)
	assert.Equal(t, data.Projects, restored.Projects)
	require.Len(t, restored.Sessions, 1)
	assert.Equal(t, "s1", restored.Sessions[0].ID)
}

func TestBackupManager_PrunesOldestBeyondKeep(t *testing.T) {
	b := newBackups(t, 2)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Write(models.NewTimeData()))
	}
	names, err := b.List()
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestBackupManager_ListNewestFirst(t *testing.T) {
	b := newBackups(t, 10)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.Write(models.NewTimeData()))
	}
	names, err := b.List()
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Greater(t, names[0], names[1])
	assert.Greater(t, names[1], names[2])
}

func TestBackupManager_RestoreUnknownName(t *testing.T) {
	b := newBackups(t, 5)
	_, err := b.Restore("no-such-backup" + backupExt)
	assert.Error(t, err)
}
