package services

import (
	"testing"
	"time"
)

func TestNextDigestTime(t *testing.T) {
	loc := time.UTC

	t.Run("later today", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 7, 30, 0, 0, loc)
		got := nextDigestTime(now, 9)
		want := time.Date(2025, 6, 2, 9, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("nextDigestTime = %v, want %v", got, want)
		}
	})

	t.Run("already past, rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 9, 0, 1, 0, loc)
		got := nextDigestTime(now, 9)
		want := time.Date(2025, 6, 3, 9, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("nextDigestTime = %v, want %v", got, want)
		}
	})

	t.Run("exactly on the hour waits a day", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 9, 0, 0, 0, loc)
		got := nextDigestTime(now, 9)
		want := time.Date(2025, 6, 3, 9, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("nextDigestTime = %v, want %v", got, want)
		}
	})
}
