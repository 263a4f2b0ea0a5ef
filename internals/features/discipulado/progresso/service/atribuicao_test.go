package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
)

func TestMontarRegistros(t *testing.T) {
	liderID := uuid.New()
	discipuloID := uuid.New()
	planoID := uuid.New()
	inicio := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	etapas := []planoModel.EtapaPlanoModel{
		{ID: uuid.New(), PlanoID: planoID, Ordem: 1},
		{ID: uuid.New(), PlanoID: planoID, Ordem: 2},
		{ID: uuid.New(), PlanoID: planoID, Ordem: 3},
	}

	t.Run("primeira etapa em andamento", func(t *testing.T) {
		registros := MontarRegistros(liderID, discipuloID, planoID, etapas, true, inicio)
		if len(registros) != len(etapas) {
			t.Fatalf("registros = %d, quer %d", len(registros), len(etapas))
		}
		if registros[0].Status != progressoModel.StatusEmAndamento {
			t.Errorf("primeira etapa status = %q, quer %q", registros[0].Status, progressoModel.StatusEmAndamento)
		}
		for i := 1; i < len(registros); i++ {
			if registros[i].Status != progressoModel.StatusPendente {
				t.Errorf("etapa %d status = %q, quer %q", i, registros[i].Status, progressoModel.StatusPendente)
			}
		}
	})

	t.Run("todas pendentes", func(t *testing.T) {
		registros := MontarRegistros(liderID, discipuloID, planoID, etapas, false, inicio)
		for i, r := range registros {
			if r.Status != progressoModel.StatusPendente {
				t.Errorf("etapa %d status = %q, quer %q", i, r.Status, progressoModel.StatusPendente)
			}
		}
	})

	t.Run("um registro por etapa distinta", func(t *testing.T) {
		registros := MontarRegistros(liderID, discipuloID, planoID, etapas, true, inicio)
		vistos := map[uuid.UUID]bool{}
		for _, r := range registros {
			if vistos[r.EtapaID] {
				t.Errorf("etapa %s duplicada", r.EtapaID)
			}
			vistos[r.EtapaID] = true
			if r.DiscipuloID != discipuloID || r.PlanoID != planoID || r.LiderID != liderID {
				t.Errorf("registro com chaves erradas: %+v", r)
			}
			if r.DataInicio == nil || !r.DataInicio.Equal(inicio) {
				t.Errorf("DataInicio = %v, quer %v", r.DataInicio, inicio)
			}
			if r.DataConclusao != nil {
				t.Errorf("DataConclusao deveria nascer nula")
			}
		}
	})
}
