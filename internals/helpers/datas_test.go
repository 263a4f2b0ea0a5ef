package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestParseDataISO(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    time.Time
	}{
		{name: "valida", input: "2025-06-10", want: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "lixo", input: "amanhã", wantErr: true},
		{name: "formato br", input: "10/06/2025", wantErr: true},
		{name: "vazia", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDataISO(tt.input)
			if tt.wantErr {
				var fe *fiber.Error
				if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
					t.Fatalf("esperava 400, veio %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataISO(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDataISO(%q) = %v, quer %v", tt.input, got, tt.want)
			}
		})
	}
}
