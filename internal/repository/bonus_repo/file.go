package bonus_repo

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pixel_casino/internal/repository"
	"pixel_casino/internal/repository/balance_repo"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileRepo struct {
	mtx sync.Mutex
	dir string
}

// NewFileRepository флаги полученных бонусов в JSON файле игрока
func NewFileRepository(dir string) (repository.BonusRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create bonus dir")
	}
	return &fileRepo{dir: dir}, nil
}

func (r *fileRepo) IsClaimed(_ context.Context, playerID, key string) (bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	claims, err := r.load(playerID)
	if err != nil {
		return false, err
	}
	_, ok := claims[key]
	return ok, nil
}

func (r *fileRepo) MarkClaimed(_ context.Context, playerID, key string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	claims, err := r.load(playerID)
	if err != nil {
		return err
	}
	claims[key] = time.Now().UTC()

	payload, err := json.Marshal(claims)
	if err != nil {
		return errors.Wrap(err, "encode bonus file")
	}

	path := r.path(playerID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return errors.Wrap(err, "write bonus file")
	}
	return errors.Wrap(os.Rename(tmp, path), "replace bonus file")
}

func (r *fileRepo) load(playerID string) (map[string]time.Time, error) {
	claims := make(map[string]time.Time)

	payload, err := os.ReadFile(r.path(playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return claims, nil
		}
		return nil, errors.Wrap(err, "read bonus file")
	}

	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.Wrap(err, "decode bonus file")
	}
	return claims, nil
}

func (r *fileRepo) path(playerID string) string {
	return filepath.Join(r.dir, balance_repo.SanitizeKey(playerID)+".bonuses.json")
}
