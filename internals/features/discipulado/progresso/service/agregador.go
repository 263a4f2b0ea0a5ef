package service

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
)

// ErrDadosIncompletos: registro de progresso veio sem plano ou etapa
// (join quebrado). Melhor falhar alto do que devolver 0% "válido".
var ErrDadosIncompletos = errors.New("registro de progresso sem plano ou etapa vinculada")

// PlanoProgresso é a visão agregada de um plano para um discípulo,
// consumida tanto pelo painel do líder quanto pelo "meus planos".
type PlanoProgresso struct {
	PlanoID             uuid.UUID                                 `json:"plano_id"`
	NomePlano           string                                    `json:"nome_plano"`
	NivelMaturidade     string                                    `json:"nivel_maturidade"`
	TotalEtapas         int                                       `json:"total_etapas"`
	EtapasConcluidas    int                                       `json:"etapas_concluidas"`
	ProgressoPercentual int                                       `json:"progresso_percentual"`
	Status              string                                    `json:"status"`
	DataInicio          *time.Time                                `json:"data_inicio"`
	UltimaAtividade     *time.Time                                `json:"ultima_atividade"`
	Etapas              []progressoModel.ProgressoDiscipuloModel  `json:"etapas,omitempty"`
}

// CalcularProgresso agrupa registros por plano (mantendo a ordem de
// primeira aparição), ordena as etapas de cada grupo por ordem (sort
// estável — empates ficam na ordem de entrada) e deriva percentuais e
// status. Função pura: não toca banco nem relógio.
func CalcularProgresso(registros []progressoModel.ProgressoDiscipuloModel) ([]PlanoProgresso, error) {
	grupos := map[uuid.UUID][]progressoModel.ProgressoDiscipuloModel{}
	var ordem []uuid.UUID

	for _, r := range registros {
		if r.Plano == nil || r.Etapa == nil {
			return nil, ErrDadosIncompletos
		}
		if _, ok := grupos[r.PlanoID]; !ok {
			ordem = append(ordem, r.PlanoID)
		}
		grupos[r.PlanoID] = append(grupos[r.PlanoID], r)
	}

	resultado := make([]PlanoProgresso, 0, len(ordem))
	for _, planoID := range ordem {
		etapas := grupos[planoID]

		sort.SliceStable(etapas, func(i, j int) bool {
			return etapas[i].Etapa.Ordem < etapas[j].Etapa.Ordem
		})

		total := len(etapas)
		concluidas := 0
		for _, e := range etapas {
			if e.Status == progressoModel.StatusConcluido {
				concluidas++
			}
		}

		percentual := 0
		if total > 0 {
			percentual = int(math.Round(float64(concluidas) / float64(total) * 100))
		}

		status := progressoModel.StatusEmAndamento
		if percentual == 100 {
			status = progressoModel.StatusConcluido
		} else if percentual == 0 {
			status = progressoModel.StatusNaoIniciado
		}

		resultado = append(resultado, PlanoProgresso{
			PlanoID:             planoID,
			NomePlano:           etapas[0].Plano.Nome,
			NivelMaturidade:     etapas[0].Plano.NivelMaturidade,
			TotalEtapas:         total,
			EtapasConcluidas:    concluidas,
			ProgressoPercentual: percentual,
			Status:              status,
			DataInicio:          primeiraDataInicio(etapas),
			UltimaAtividade:     ultimaAtividade(etapas),
			Etapas:              etapas,
		})
	}

	return resultado, nil
}

// ultimaAtividade: maior updated_at do grupo; se nenhum registro tiver
// updated_at, cai para a primeira data de início.
func ultimaAtividade(etapas []progressoModel.ProgressoDiscipuloModel) *time.Time {
	var max *time.Time
	for i := range etapas {
		u := etapas[i].UpdatedAt
		if u.IsZero() {
			continue
		}
		if max == nil || u.After(*max) {
			t := u
			max = &t
		}
	}
	if max != nil {
		return max
	}
	return primeiraDataInicio(etapas)
}

func primeiraDataInicio(etapas []progressoModel.ProgressoDiscipuloModel) *time.Time {
	for i := range etapas {
		if etapas[i].DataInicio != nil {
			return etapas[i].DataInicio
		}
	}
	return nil
}
