package model

import (
	"pixel_casino/internal/model"
)

// GameState Состояние игры
type GameState struct {
	TotalRounds int     // Сколько всего раундов сыграно
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	RoundWindow []RoundResult // Окно последних раундов для анализа
	WindowRTP   float64       // RTP в окне последних раундов
	WindowSize  int           // Размер окна для анализа RTP

	Alarm bool // RTP окна вышел за критическое отклонение
}

// Результат раунда для окна
type RoundResult struct {
	Bet    float64
	Payout float64
}

// History Кольцевой буфер последних раундов игрока
type History struct {
	entries []model.HistoryEntry
	next    int
	full    bool
}

func NewHistory(size int) *History {
	return &History{entries: make([]model.HistoryEntry, size)}
}

// Push Перезаписывает самую старую запись, когда буфер заполнен
func (h *History) Push(e model.HistoryEntry) {
	if len(h.entries) == 0 {
		return
	}
	h.entries[h.next] = e
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
}

// Entries Записи от новой к старой
func (h *History) Entries() []model.HistoryEntry {
	n := h.next
	if h.full {
		n = len(h.entries)
	}

	res := make([]model.HistoryEntry, 0, n)
	for i := 1; i <= n; i++ {
		idx := (h.next - i + len(h.entries)) % len(h.entries)
		res = append(res, h.entries[idx])
	}
	return res
}
