package env

import (
	"os"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	storageBackendEnvName = "STORAGE_BACKEND"
	storageDirEnvName     = "STORAGE_DIR"
	journalDirEnvName     = "JOURNAL_DIR"
)

// Поддерживаемые хранилища баланса
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type storageConfig struct {
	backend    string
	dir        string
	journalDir string
}

func NewStorageConfig() (config.StorageConfig, error) {
	backend := os.Getenv(storageBackendEnvName)
	if len(backend) == 0 {
		backend = BackendMemory
	}

	switch backend {
	case BackendMemory, BackendFile, BackendPostgres, BackendRedis:
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}

	dir := os.Getenv(storageDirEnvName)
	if len(dir) == 0 {
		dir = "./data/players"
	}

	journalDir := os.Getenv(journalDirEnvName)
	if len(journalDir) == 0 {
		journalDir = "./data/journal"
	}

	return &storageConfig{
		backend:    backend,
		dir:        dir,
		journalDir: journalDir,
	}, nil
}

func (cfg *storageConfig) Backend() string {
	return cfg.backend
}

func (cfg *storageConfig) Dir() string {
	return cfg.dir
}

func (cfg *storageConfig) JournalDir() string {
	return cfg.journalDir
}
