package quotes

import (
	"testing"
	"time"
)

func TestDaily_Deterministic(t *testing.T) {
	morning := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 3, 15, 22, 0, 0, 0, time.Local)

	if Daily(morning) != Daily(evening) {
		t.Error("same day produced different quotes")
	}
	if Daily(morning) == "" {
		t.Error("empty quote")
	}
}

func TestRandom_ReturnsAQuote(t *testing.T) {
	if Random() == "" {
		t.Error("empty quote")
	}
}
