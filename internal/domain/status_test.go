package domain_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		token string
		want  domain.Status
		ok    bool
	}{
		{"ok", domain.StatusOK, true},
		{"BUY", domain.StatusBuy, true},
		{"Produce", domain.StatusProduce, true},
		{"pending", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := domain.ParseStatus(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParseStatus(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	if got := domain.StatusLabel(domain.StatusBuy); got != "Purchase" {
		t.Errorf("StatusLabel(buy) = %q, want %q", got, "Purchase")
	}
	if got := domain.StatusLabel(domain.Status("weird")); got != "Unknown" {
		t.Errorf("StatusLabel(weird) = %q, want %q", got, "Unknown")
	}
}
