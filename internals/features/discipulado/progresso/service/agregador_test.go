package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
)

func novoPlano(nome string) *planoModel.PlanoDiscipuladoModel {
	return &planoModel.PlanoDiscipuladoModel{
		ID:              uuid.New(),
		Nome:            nome,
		NivelMaturidade: planoModel.NivelIniciante,
	}
}

func registro(plano *planoModel.PlanoDiscipuladoModel, ordem int, status string) progressoModel.ProgressoDiscipuloModel {
	return progressoModel.ProgressoDiscipuloModel{
		ID:      uuid.New(),
		PlanoID: plano.ID,
		EtapaID: uuid.New(),
		Status:  status,
		Plano:   plano,
		Etapa:   &planoModel.EtapaPlanoModel{ID: uuid.New(), PlanoID: plano.ID, Ordem: ordem},
	}
}

func TestCalcularProgressoPercentualEStatus(t *testing.T) {
	tests := []struct {
		name           string
		statuses       []string
		wantConcluidas int
		wantPercentual int
		wantStatus     string
	}{
		{
			name:           "metade concluida",
			statuses:       []string{progressoModel.StatusConcluido, progressoModel.StatusConcluido, progressoModel.StatusEmAndamento, progressoModel.StatusPendente},
			wantConcluidas: 2,
			wantPercentual: 50,
			wantStatus:     progressoModel.StatusEmAndamento,
		},
		{
			name:           "nada concluido",
			statuses:       []string{progressoModel.StatusPendente, progressoModel.StatusPendente, progressoModel.StatusPendente, progressoModel.StatusPendente},
			wantConcluidas: 0,
			wantPercentual: 0,
			wantStatus:     progressoModel.StatusNaoIniciado,
		},
		{
			name:           "tudo concluido",
			statuses:       []string{progressoModel.StatusConcluido, progressoModel.StatusConcluido, progressoModel.StatusConcluido, progressoModel.StatusConcluido},
			wantConcluidas: 4,
			wantPercentual: 100,
			wantStatus:     progressoModel.StatusConcluido,
		},
		{
			// "Em Andamento" sem nenhuma conclusão continua "Não Iniciado":
			// o status derivado só olha contagem de concluídas
			name:           "em andamento sem conclusao",
			statuses:       []string{progressoModel.StatusEmAndamento, progressoModel.StatusPendente, progressoModel.StatusPendente},
			wantConcluidas: 0,
			wantPercentual: 0,
			wantStatus:     progressoModel.StatusNaoIniciado,
		},
		{
			// 1/3 → 33.33 arredonda para 33; 2/3 → 66.67 para 67
			name:           "arredondamento um terco",
			statuses:       []string{progressoModel.StatusConcluido, progressoModel.StatusPendente, progressoModel.StatusPendente},
			wantConcluidas: 1,
			wantPercentual: 33,
			wantStatus:     progressoModel.StatusEmAndamento,
		},
		{
			name:           "arredondamento dois tercos",
			statuses:       []string{progressoModel.StatusConcluido, progressoModel.StatusConcluido, progressoModel.StatusPendente},
			wantConcluidas: 2,
			wantPercentual: 67,
			wantStatus:     progressoModel.StatusEmAndamento,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plano := novoPlano("Fundamentos")
			var registros []progressoModel.ProgressoDiscipuloModel
			for i, st := range tt.statuses {
				registros = append(registros, registro(plano, i+1, st))
			}

			planos, err := CalcularProgresso(registros)
			if err != nil {
				t.Fatalf("CalcularProgresso: %v", err)
			}
			if len(planos) != 1 {
				t.Fatalf("esperava 1 plano, veio %d", len(planos))
			}
			p := planos[0]
			if p.TotalEtapas != len(tt.statuses) {
				t.Errorf("TotalEtapas = %d, quer %d", p.TotalEtapas, len(tt.statuses))
			}
			if p.EtapasConcluidas != tt.wantConcluidas {
				t.Errorf("EtapasConcluidas = %d, quer %d", p.EtapasConcluidas, tt.wantConcluidas)
			}
			if p.ProgressoPercentual != tt.wantPercentual {
				t.Errorf("ProgressoPercentual = %d, quer %d", p.ProgressoPercentual, tt.wantPercentual)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("Status = %q, quer %q", p.Status, tt.wantStatus)
			}
			if p.ProgressoPercentual < 0 || p.ProgressoPercentual > 100 {
				t.Errorf("percentual fora de [0,100]: %d", p.ProgressoPercentual)
			}
		})
	}
}

func TestCalcularProgressoOrdenacaoEstavel(t *testing.T) {
	// ordens [2,2,1]: a ordem 1 vem primeiro, as duas ordem 2 mantêm a
	// ordem de entrada entre si
	plano := novoPlano("Fundamentos")
	a := registro(plano, 2, progressoModel.StatusPendente)
	b := registro(plano, 2, progressoModel.StatusPendente)
	c := registro(plano, 1, progressoModel.StatusPendente)

	planos, err := CalcularProgresso([]progressoModel.ProgressoDiscipuloModel{a, b, c})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if len(planos) != 1 {
		t.Fatalf("esperava 1 plano, veio %d", len(planos))
	}
	p := planos[0]
	if p.TotalEtapas != 3 {
		t.Fatalf("TotalEtapas = %d, quer 3", p.TotalEtapas)
	}
	got := []uuid.UUID{p.Etapas[0].ID, p.Etapas[1].ID, p.Etapas[2].ID}
	want := []uuid.UUID{c.ID, a.ID, b.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("posição %d: etapa %s, quer %s", i, got[i], want[i])
		}
	}
}

func TestCalcularProgressoPlanosIndependentes(t *testing.T) {
	// registros de dois planos do mesmo discípulo nunca se misturam
	p1 := novoPlano("Fundamentos")
	p2 := novoPlano("Maturidade")
	registros := []progressoModel.ProgressoDiscipuloModel{
		registro(p1, 1, progressoModel.StatusConcluido),
		registro(p2, 1, progressoModel.StatusPendente),
		registro(p1, 2, progressoModel.StatusConcluido),
		registro(p2, 2, progressoModel.StatusPendente),
	}

	planos, err := CalcularProgresso(registros)
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if len(planos) != 2 {
		t.Fatalf("esperava 2 planos, veio %d", len(planos))
	}
	if planos[0].PlanoID != p1.ID || planos[1].PlanoID != p2.ID {
		t.Fatalf("ordem dos planos deve seguir a primeira aparição")
	}
	if planos[0].ProgressoPercentual != 100 || planos[0].Status != progressoModel.StatusConcluido {
		t.Errorf("plano 1: percentual=%d status=%q", planos[0].ProgressoPercentual, planos[0].Status)
	}
	if planos[1].ProgressoPercentual != 0 || planos[1].Status != progressoModel.StatusNaoIniciado {
		t.Errorf("plano 2: percentual=%d status=%q", planos[1].ProgressoPercentual, planos[1].Status)
	}
}

func TestCalcularProgressoUltimaAtividade(t *testing.T) {
	plano := novoPlano("Fundamentos")
	inicio := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

	a := registro(plano, 1, progressoModel.StatusConcluido)
	a.DataInicio = &inicio
	a.UpdatedAt = t1
	b := registro(plano, 2, progressoModel.StatusEmAndamento)
	b.DataInicio = &inicio
	b.UpdatedAt = t2

	planos, err := CalcularProgresso([]progressoModel.ProgressoDiscipuloModel{a, b})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if planos[0].UltimaAtividade == nil || !planos[0].UltimaAtividade.Equal(t2) {
		t.Errorf("UltimaAtividade = %v, quer %v", planos[0].UltimaAtividade, t2)
	}

	// sem updated_at em nenhum registro, cai para data_inicio
	a.UpdatedAt = time.Time{}
	b.UpdatedAt = time.Time{}
	planos, err = CalcularProgresso([]progressoModel.ProgressoDiscipuloModel{a, b})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if planos[0].UltimaAtividade == nil || !planos[0].UltimaAtividade.Equal(inicio) {
		t.Errorf("UltimaAtividade fallback = %v, quer %v", planos[0].UltimaAtividade, inicio)
	}
}

func TestCalcularProgressoDadosIncompletos(t *testing.T) {
	plano := novoPlano("Fundamentos")
	r := registro(plano, 1, progressoModel.StatusPendente)
	r.Etapa = nil

	if _, err := CalcularProgresso([]progressoModel.ProgressoDiscipuloModel{r}); err != ErrDadosIncompletos {
		t.Fatalf("err = %v, quer ErrDadosIncompletos", err)
	}

	r = registro(plano, 1, progressoModel.StatusPendente)
	r.Plano = nil
	if _, err := CalcularProgresso([]progressoModel.ProgressoDiscipuloModel{r}); err != ErrDadosIncompletos {
		t.Fatalf("err = %v, quer ErrDadosIncompletos", err)
	}
}

func TestCalcularProgressoVazio(t *testing.T) {
	planos, err := CalcularProgresso(nil)
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if len(planos) != 0 {
		t.Fatalf("esperava lista vazia, veio %d", len(planos))
	}
}
