package rng

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"
)

const serverSeedSize = 32

// Source - источник случайности для игр. *rand.Rand из math/rand/v2 ему удовлетворяет
type Source interface {
	Float64() float64
	IntN(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// Seed - зерно одного раунда. По нему раунд воспроизводится заново
type Seed [32]byte

// Source строит PCG генератор из зерна
func (s Seed) Source() Source {
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(s[0:8]),
		binary.LittleEndian.Uint64(s[8:16]),
	))
}

func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// ParseSeed разбирает зерно из hex строки журнала
func ParseSeed(str string) (Seed, error) {
	var s Seed
	b, err := hex.DecodeString(str)
	if err != nil {
		return s, err
	}
	if len(b) != len(s) {
		return s, errors.New("seed must be 32 bytes")
	}
	copy(s[:], b)
	return s, nil
}

// Seeder выдает зерна раундов: blake2b(serverSeed || player || nonce)
type Seeder struct {
	serverSeed []byte
	digest     string
	nonce      atomic.Uint64
}

// NewSeeder создает сидер. Пустой serverSeed заменяется случайным
func NewSeeder(serverSeed []byte) (*Seeder, error) {
	if len(serverSeed) == 0 {
		serverSeed = make([]byte, serverSeedSize)
		if _, err := rand.Read(serverSeed); err != nil {
			return nil, err
		}
	}

	sum := blake2b.Sum256(serverSeed)

	return &Seeder{
		serverSeed: serverSeed,
		digest:     hex.EncodeToString(sum[:]),
	}, nil
}

// Digest - публикуемый хэш серверного зерна
func (s *Seeder) Digest() string {
	return s.digest
}

// Next возвращает зерно следующего раунда игрока и его nonce
func (s *Seeder) Next(player string) (Seed, uint64) {
	nonce := s.nonce.Add(1)
	return s.Derive(player, nonce), nonce
}

// Derive детерминированно вычисляет зерно по игроку и nonce
func (s *Seeder) Derive(player string, nonce uint64) Seed {
	h, _ := blake2b.New256(nil)
	h.Write(s.serverSeed)
	h.Write([]byte(player))

	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	h.Write(n[:])

	var seed Seed
	copy(seed[:], h.Sum(nil))
	return seed
}
