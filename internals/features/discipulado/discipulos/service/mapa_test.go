package service

import (
	"testing"

	"github.com/google/uuid"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

func discipuloEm(nome string, lat, lng float64) discipuloModel.DiscipuloModel {
	return discipuloModel.DiscipuloModel{
		ID:                   uuid.New(),
		Nome:                 nome,
		Status:               discipuloModel.StatusAtivo,
		MaturidadeEspiritual: discipuloModel.MaturidadeIniciante,
		Latitude:             &lat,
		Longitude:            &lng,
	}
}

func TestAgruparPorCoordenada(t *testing.T) {
	// -23.55051 e -23.55049 arredondam ambos para -23.5505
	a := discipuloEm("Ana", -23.55051, -46.63331)
	b := discipuloEm("Bruno", -23.55049, -46.63329)
	c := discipuloEm("Clara", -22.90685, -43.17290)
	semCoord := discipuloModel.DiscipuloModel{ID: uuid.New(), Nome: "Davi"}

	clusters := AgruparPorCoordenada([]discipuloModel.DiscipuloModel{a, b, c, semCoord})

	if len(clusters) != 2 {
		t.Fatalf("esperava 2 clusters, veio %d", len(clusters))
	}
	if clusters[0].Total != 2 || len(clusters[0].Discipulos) != 2 {
		t.Errorf("cluster 0: total=%d, quer 2", clusters[0].Total)
	}
	if clusters[0].Discipulos[0].Nome != "Ana" || clusters[0].Discipulos[1].Nome != "Bruno" {
		t.Errorf("cluster 0 deve preservar ordem de entrada: %+v", clusters[0].Discipulos)
	}
	// a âncora é o ponto arredondado, não a coordenada de quem entrou primeiro
	if clusters[0].Latitude != -23.5505 || clusters[0].Longitude != -46.6333 {
		t.Errorf("âncora = (%v, %v), quer (-23.5505, -46.6333)", clusters[0].Latitude, clusters[0].Longitude)
	}
	if clusters[1].Total != 1 || clusters[1].Discipulos[0].Nome != "Clara" {
		t.Errorf("cluster 1 inesperado: %+v", clusters[1])
	}
}

func TestAgruparPorCoordenadaVazio(t *testing.T) {
	clusters := AgruparPorCoordenada(nil)
	if len(clusters) != 0 {
		t.Fatalf("esperava lista vazia, veio %d", len(clusters))
	}
}
