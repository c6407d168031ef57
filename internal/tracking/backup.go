package tracking

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/structures"
	"timekeep/internal/tracking/interfaces"

	json "github.com/goccy/go-json"
)

const backupExt = ".json.zst"

// BackupManager writes compressed snapshots of the time-data document
// and prunes old ones, oldest first. Disabled when no directory is
// configured.
type BackupManager struct {
	dir        string
	keep       int
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewBackupManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *BackupManager {
	keep := conf.Backup.Keep
	if keep <= 0 {
		keep = 10
	}
	return &BackupManager{
		dir:        conf.Backup.Dir,
		keep:       keep,
		compressor: compressor,
		logger:     logger,
	}
}

func (b *BackupManager) Enabled() bool {
	return b.dir != ""
}

func (b *BackupManager) Write(data *models.TimeData) error {
	if !b.Enabled() {
		return nil
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	compressed, err := b.compressor.Compress(raw)
	if err != nil {
		return err
	}

	// nanosecond suffix keeps names unique for writes within a second
	name := fmt.Sprintf("timedata-%s%s", time.Now().Format("20060102-150405.000000000"), backupExt)
	path := filepath.Join(b.dir, name)
	if err := atomicWrite(path, compressed); err != nil {
		return err
	}
	b.logger.Infof(providers.TypeStore, "Wrote backup %s", path)

	return b.prune()
}

// Restore reads a backup by file name from the backup directory.
func (b *BackupManager) Restore(name string) (*models.TimeData, error) {
	raw, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		return nil, err
	}
	decompressed, err := b.compressor.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: backup %s: %v", ErrCorruptData, name, err)
	}
	var data models.TimeData
	if err := json.Unmarshal(decompressed, &data); err != nil {
		return nil, fmt.Errorf("%w: backup %s: %v", ErrCorruptData, name, err)
	}
	return &data, nil
}

// List returns available backup file names, newest first.
func (b *BackupManager) List() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), backupExt) {
			names = append(names, e.Name())
		}
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (b *BackupManager) prune() error {
	names, err := b.List()
	if err != nil {
		return err
	}
	for i := b.keep; i < len(names); i++ {
		if err := os.Remove(filepath.Join(b.dir, names[i])); err != nil {
			return err
		}
		b.logger.Debugf(providers.TypeStore, "Pruned backup %s", names[i])
	}
	return nil
}

func (b *BackupManager) Close() {
	b.compressor.Close()
}
