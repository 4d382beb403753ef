package service

import (
	"context"
	"crypto/rand"
	"fmt"
)

const (
	trackCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackCodeLength   = 8

	// Коллизии на практике не встречаются, лимит страхует от вырожденных случаев.
	maxTrackCodeAttempts = 5
)

func newTrackCode() (string, error) {
	buf := make([]byte, trackCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackCodeAlphabet[int(b)%len(trackCodeAlphabet)]
	}
	return string(buf), nil
}

// pickTrackCode генерирует код и перепроверяет его занятость в хранилище,
// при коллизии генерирует заново.
func (s *orderService) pickTrackCode(ctx context.Context) (string, error) {
	for range maxTrackCodeAttempts {
		code, err := newTrackCode()
		if err != nil {
			return "", err
		}

		exists, err := s.repo.TrackCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check track code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to pick unique track code after %d attempts", maxTrackCodeAttempts)
}
