package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

type PinoMapa struct {
	ID                   uuid.UUID `json:"id"`
	Nome                 string    `json:"nome"`
	Status               string    `json:"status"`
	MaturidadeEspiritual string    `json:"maturidade_espiritual"`
	Cidade               *string   `json:"cidade"`
}

type ClusterMapa struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Total      int        `json:"total"`
	Discipulos []PinoMapa `json:"discipulos"`
}

// AgruparPorCoordenada agrupa discípulos que caem no mesmo ponto do mapa
// (coordenadas arredondadas em 4 casas, ~11m). Registros sem latitude ou
// longitude ficam de fora. A ordem dos clusters segue a primeira aparição.
func AgruparPorCoordenada(discipulos []discipuloModel.DiscipuloModel) []ClusterMapa {
	porChave := make(map[string]int)
	clusters := make([]ClusterMapa, 0)

	for _, d := range discipulos {
		if d.Latitude == nil || d.Longitude == nil {
			continue
		}
		lat := arredonda4(*d.Latitude)
		lng := arredonda4(*d.Longitude)
		chave := fmt.Sprintf("%.4f_%.4f", lat, lng)
		idx, ok := porChave[chave]
		if !ok {
			idx = len(clusters)
			porChave[chave] = idx
			// âncora nas coordenadas arredondadas: o pino não depende de
			// qual membro chegou primeiro
			clusters = append(clusters, ClusterMapa{
				Latitude:  lat,
				Longitude: lng,
			})
		}
		clusters[idx].Discipulos = append(clusters[idx].Discipulos, PinoMapa{
			ID:                   d.ID,
			Nome:                 d.Nome,
			Status:               d.Status,
			MaturidadeEspiritual: d.MaturidadeEspiritual,
			Cidade:               d.Cidade,
		})
		clusters[idx].Total++
	}

	return clusters
}

func arredonda4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
