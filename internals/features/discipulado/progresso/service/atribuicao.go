package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
)

var (
	ErrPlanoSemEtapas = errors.New("plano não possui etapas")
	ErrJaAtribuido    = errors.New("plano já atribuído a este discípulo")
)

// AtribuirPlano cria um registro de progresso por etapa do plano, tudo ou
// nada dentro de uma transação. A origem fazia inserts avulsos e podia
// deixar atribuição parcial; aqui o pré-check também dá idempotência.
//
// primeiraEmAndamento: etapa de menor ordem nasce "Em Andamento" (trilha
// única); caso contrário todas nascem "Pendente".
// now é injetável para os testes.
func AtribuirPlano(
	db *gorm.DB,
	liderID, discipuloID, planoID uuid.UUID,
	primeiraEmAndamento bool,
	now func() time.Time,
) ([]progressoModel.ProgressoDiscipuloModel, error) {
	if now == nil {
		now = time.Now
	}

	var criados []progressoModel.ProgressoDiscipuloModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var existentes int64
		if err := tx.Model(&progressoModel.ProgressoDiscipuloModel{}).
			Where("discipulo_id = ? AND plano_id = ?", discipuloID, planoID).
			Count(&existentes).Error; err != nil {
			return err
		}
		if existentes > 0 {
			return ErrJaAtribuido
		}

		var etapas []planoModel.EtapaPlanoModel
		if err := tx.
			Where("plano_id = ?", planoID).
			Order("ordem ASC, created_at ASC").
			Find(&etapas).Error; err != nil {
			return err
		}
		if len(etapas) == 0 {
			return ErrPlanoSemEtapas
		}

		inicio := now()
		criados = MontarRegistros(liderID, discipuloID, planoID, etapas, primeiraEmAndamento, inicio)

		return tx.Create(&criados).Error
	})
	if err != nil {
		return nil, err
	}
	return criados, nil
}

// MontarRegistros é a parte pura da atribuição: uma linha por etapa,
// status inicial conforme a política. Separada para teste sem banco.
func MontarRegistros(
	liderID, discipuloID, planoID uuid.UUID,
	etapas []planoModel.EtapaPlanoModel,
	primeiraEmAndamento bool,
	inicio time.Time,
) []progressoModel.ProgressoDiscipuloModel {
	registros := make([]progressoModel.ProgressoDiscipuloModel, 0, len(etapas))
	for i, etapa := range etapas {
		status := progressoModel.StatusPendente
		if primeiraEmAndamento && i == 0 {
			status = progressoModel.StatusEmAndamento
		}
		registros = append(registros, progressoModel.ProgressoDiscipuloModel{
			DiscipuloID: discipuloID,
			PlanoID:     planoID,
			EtapaID:     etapa.ID,
			LiderID:     liderID,
			Status:      status,
			DataInicio:  &inicio,
		})
	}
	return registros
}
