package tracking

import (
	"errors"
	"fmt"
	"os"
	"timekeep/internal/models"
	"timekeep/internal/providers"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ErrCorruptData marks a data file that exists but cannot be parsed.
// Loading does not fall back to defaults in that case; the user decides
// whether to restore a backup or delete the file.
var ErrCorruptData = errors.New("time data file is corrupt")

// FileManager owns the on-disk time-data document. Writes go through a
// temp file with fsync and rename so a crash never leaves a torn file.
type FileManager struct {
	logger providers.Logger
}

func NewFileManager(logger providers.Logger) *FileManager {
	return &FileManager{logger: logger}
}

func (f *FileManager) Save(fileName string, data *models.TimeData) error {
	jsonData, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	return atomicWrite(fileName, jsonData)
}

// Load reads the document at fileName. A missing file seeds the default
// projects and persists them immediately. Documents written before
// stable session ids get fresh ids assigned and are upgraded on the
// next save.
func (f *FileManager) Load(fileName string) (*models.TimeData, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			data := models.NewTimeData()
			f.logger.Infof(providers.TypeStore, "No data file at %s, seeding defaults", fileName)
			if err := f.Save(fileName, data); err != nil {
				return nil, err
			}
			return data, nil
		}
		return nil, err
	}

	var data models.TimeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, fileName, err)
	}

	if data.Projects == nil {
		data.Projects = []models.Project{}
	}
	if data.Sessions == nil {
		data.Sessions = []models.Session{}
	}

	if data.Version < models.DataVersion {
		migrated := 0
		for i := range data.Sessions {
			if data.Sessions[i].ID == "" {
				data.Sessions[i].ID = uuid.NewString()
				migrated++
			}
		}
		data.Version = models.DataVersion
		f.logger.Warnf(providers.TypeStore, "Migrated legacy data file, assigned %d session ids", migrated)
	}

	return &data, nil
}

func atomicWrite(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
