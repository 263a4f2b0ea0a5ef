package service

import (
	"testing"

	grupoModel "pastordigital_backend/internals/features/grupos/model"
)

func TestContarPresencas(t *testing.T) {
	tests := []struct {
		name           string
		presencas      []grupoModel.MeetingAttendanceModel
		wantPresentes  int
		wantVisitantes int
	}{
		{
			name: "mistura",
			presencas: []grupoModel.MeetingAttendanceModel{
				{Presente: true},
				{Presente: true, Visitante: true},
				{Presente: false},
				{Visitante: true},
			},
			wantPresentes:  2,
			wantVisitantes: 2,
		},
		{
			name:           "vazio",
			presencas:      nil,
			wantPresentes:  0,
			wantVisitantes: 0,
		},
		{
			name: "todos ausentes",
			presencas: []grupoModel.MeetingAttendanceModel{
				{Presente: false},
				{Presente: false},
			},
			wantPresentes:  0,
			wantVisitantes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presentes, visitantes := ContarPresencas(tt.presencas)
			if presentes != tt.wantPresentes {
				t.Errorf("presentes = %d, quer %d", presentes, tt.wantPresentes)
			}
			if visitantes != tt.wantVisitantes {
				t.Errorf("visitantes = %d, quer %d", visitantes, tt.wantVisitantes)
			}
		})
	}
}
