package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
)

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperava *fiber.Error, veio %T (%v)", err, err)
	}
	return fe.Code
}

func TestChecarPreCondicao(t *testing.T) {
	gravado := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	outro := gravado.Add(time.Minute)

	tests := []struct {
		name         string
		esperado     *time.Time
		wantConflito bool
	}{
		{name: "sem pre-condicao passa", esperado: nil},
		{name: "updated_at igual passa", esperado: &gravado},
		{name: "updated_at defasado conflita", esperado: &outro, wantConflito: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registro := &progressoModel.ProgressoDiscipuloModel{
				Status:    progressoModel.StatusEmAndamento,
				UpdatedAt: gravado,
			}
			err := checarPreCondicao(registro, tt.esperado)
			if tt.wantConflito {
				if code := fiberStatus(t, err); code != fiber.StatusConflict {
					t.Errorf("status = %d, quer %d", code, fiber.StatusConflict)
				}
				return
			}
			if err != nil {
				t.Errorf("esperava passar, veio %v", err)
			}
		})
	}
}

func TestValidarConclusao(t *testing.T) {
	gravado := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	defasado := gravado.Add(-time.Hour)

	t.Run("pendente conclui", func(t *testing.T) {
		registro := &progressoModel.ProgressoDiscipuloModel{
			Status:    progressoModel.StatusPendente,
			UpdatedAt: gravado,
		}
		if err := validarConclusao(registro, nil); err != nil {
			t.Errorf("esperava passar, veio %v", err)
		}
	})

	t.Run("ja concluido e 409", func(t *testing.T) {
		registro := &progressoModel.ProgressoDiscipuloModel{
			Status:    progressoModel.StatusConcluido,
			UpdatedAt: gravado,
		}
		err := validarConclusao(registro, nil)
		if code := fiberStatus(t, err); code != fiber.StatusConflict {
			t.Errorf("status = %d, quer %d", code, fiber.StatusConflict)
		}
	})

	t.Run("ja concluido ganha da pre-condicao", func(t *testing.T) {
		// os dois checks falhariam; a resposta deve ser a da transição
		registro := &progressoModel.ProgressoDiscipuloModel{
			Status:    progressoModel.StatusConcluido,
			UpdatedAt: gravado,
		}
		err := validarConclusao(registro, &defasado)
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Message != "Etapa já concluída" {
			t.Errorf("esperava erro de etapa já concluída, veio %v", err)
		}
	})

	t.Run("em andamento com updated_at defasado conflita", func(t *testing.T) {
		registro := &progressoModel.ProgressoDiscipuloModel{
			Status:    progressoModel.StatusEmAndamento,
			UpdatedAt: gravado,
		}
		err := validarConclusao(registro, &defasado)
		if code := fiberStatus(t, err); code != fiber.StatusConflict {
			t.Errorf("status = %d, quer %d", code, fiber.StatusConflict)
		}
	})
}
