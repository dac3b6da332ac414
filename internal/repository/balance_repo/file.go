package balance_repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pixel_casino/internal/repository"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileState struct {
	Balance int `json:"balance"`
}

type fileRepo struct {
	mtx sync.Mutex
	dir string
}

// NewFileRepository хранит баланс игрока в отдельном JSON файле
func NewFileRepository(dir string) (repository.BalanceRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create balance dir")
	}
	return &fileRepo{dir: dir}, nil
}

func (r *fileRepo) GetBalance(_ context.Context, playerID string) (int, bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	payload, err := os.ReadFile(r.path(playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "read balance file")
	}

	var state fileState
	if err := json.Unmarshal(payload, &state); err != nil {
		return 0, false, errors.Wrap(err, "decode balance file")
	}

	return state.Balance, true, nil
}

func (r *fileRepo) SetBalance(_ context.Context, playerID string, balance int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	payload, err := json.Marshal(fileState{Balance: balance})
	if err != nil {
		return errors.Wrap(err, "encode balance file")
	}

	return writeFileAtomic(r.path(playerID), payload)
}

func (r *fileRepo) path(playerID string) string {
	return filepath.Join(r.dir, SanitizeKey(playerID)+".balance.json")
}

// SanitizeKey оставляет в ключе только безопасные для имени файла символы
func SanitizeKey(key string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(key) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func writeFileAtomic(path string, payload []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "replace file")
	}
	return nil
}
