package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winspect/internal/logging"
	"winspect/internal/sysinfo"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{FilePath: "", Level: logging.LevelError})
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(Config{Enabled: true, DataDir: filepath.Join(t.TempDir(), "reports")})
	require.NoError(t, err)
	return s
}

func snapshotAt(ts time.Time) *sysinfo.SystemInfo {
	return &sysinfo.SystemInfo{
		CollectedAt: ts,
		Version:     "test",
		OS:          sysinfo.OSInfo{Caption: "Example OS", Build: "22631"},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	path, err := s.Save(snapshotAt(ts))
	require.NoError(t, err)
	assert.Equal(t, "report-20260314-092653.json", filepath.Base(path))
	assert.FileExists(t, path)

	got, err := s.Load(filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, "Example OS", got.OS.Caption)
	assert.True(t, got.CollectedAt.Equal(ts))
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	times := []time.Time{
		time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		_, err := s.Save(snapshotAt(ts))
		require.NoError(t, err)
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "report-20260104-100000.json", list[0].Name)
	assert.Equal(t, "report-20260103-100000.json", list[1].Name)
	assert.Equal(t, "report-20260102-100000.json", list[2].Name)
	for _, sum := range list {
		assert.Positive(t, sum.SizeBytes)
	}
}

func TestListSkipsForeignFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "report-bad.txt"), []byte("x"), 0600))

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListMissingDir(t *testing.T) {
	s := &Store{dataDir: filepath.Join(t.TempDir(), "never-created")}
	list, err := s.List()
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(snapshotAt(time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDisabledStoreRejectsSave(t *testing.T) {
	s, err := NewStore(Config{Enabled: false, DataDir: filepath.Join(t.TempDir(), "reports")})
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	_, err = s.Save(snapshotAt(time.Now().UTC()))
	assert.Error(t, err)

	// A disabled store must not create its directory either.
	_, statErr := os.Stat(s.Dir())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveNilSnapshot(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(nil)
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(snapshotAt(time.Now().UTC()))
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, true, stats["enabled"])
	assert.Equal(t, 1, stats["count"])
	assert.Equal(t, s.Dir(), stats["data_dir"])
}
