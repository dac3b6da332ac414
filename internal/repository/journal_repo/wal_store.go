package journal_repo

import (
	"strings"
	"sync"

	"pixel_casino/internal/model"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultJournalDir   = "./data/journal"
	journalSegmentLimit = 1000
	journalMaxSegments  = 100
	roundKeyPrefix      = "round_"
)

// WALStore Журнал сыгранных раундов с зернами для воспроизведения
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore открывает журнал в каталоге dir
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = defaultJournalDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "rounds_",
		SegmentThreshold: journalSegmentLimit,
		MaxSegments:      journalMaxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init round journal WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Append пишет запись и возвращает ее индекс
func (s *WALStore) Append(record model.JournalRecord) (uint64, error) {
	if s == nil || s.wal == nil {
		return 0, errors.New("round journal is not initialized")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return 0, errors.Wrap(err, "marshal journal record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.wal.CurrentIndex() + 1
	if err := s.wal.Write(index, roundKeyPrefix+record.RoundID.String(), payload); err != nil {
		return 0, errors.Wrap(err, "write journal record")
	}
	return index, nil
}

// RecordsAfter возвращает не больше limit записей после индекса
func (s *WALStore) RecordsAfter(index uint64, limit int) ([]model.JournalRecord, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("round journal is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	if current <= index {
		return []model.JournalRecord{}, nil
	}

	records := make([]model.JournalRecord, 0, min(int(current-index), limit))
	for idx := index + 1; idx <= current && len(records) < limit; idx++ {
		key, payload, ok := s.wal.Get(idx)
		if !ok || !strings.HasPrefix(key, roundKeyPrefix) {
			continue
		}

		var record model.JournalRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, errors.Wrap(err, "decode journal record")
		}
		record.Index = idx
		records = append(records, record)
	}

	return records, nil
}

// CurrentIndex последний записанный индекс
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wal.CurrentIndex()
}

func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("round journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
