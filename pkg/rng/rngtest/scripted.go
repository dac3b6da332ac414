// Package rngtest содержит управляемый источник случайности для тестов игр.
package rngtest

// Scripted отдает заранее заданные значения по порядку.
// Когда сценарий кончается, возвращает нули.
type Scripted struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Scripted) Float64() float64 {
	if s.fi >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

func (s *Scripted) IntN(n int) int {
	if s.ii >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.ii]
	s.ii++
	return v % n
}

// Perm всегда возвращает тождественную перестановку
func (s *Scripted) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Shuffle ничего не перемешивает
func (s *Scripted) Shuffle(int, func(i, j int)) {}
