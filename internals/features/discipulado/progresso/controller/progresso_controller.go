package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pastordigital_backend/internals/configs"
	alertaModel "pastordigital_backend/internals/features/alertas/model"
	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
	progressoDTO "pastordigital_backend/internals/features/discipulado/progresso/dto"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
	progressoService "pastordigital_backend/internals/features/discipulado/progresso/service"
	helper "pastordigital_backend/internals/helpers"
)

type ProgressoController struct {
	DB  *gorm.DB
	Now func() time.Time // injetável nos testes
}

func NewProgressoController(db *gorm.DB) *ProgressoController {
	return &ProgressoController{DB: db, Now: time.Now}
}

// POST /api/u/progresso/atribuir
// Cria um registro por etapa do plano, transacional (tudo ou nada).
func (ctrl *ProgressoController) AtribuirPlano(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req progressoDTO.AtribuirPlanoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// posse: plano e discípulo precisam ser do líder
	var plano planoModel.PlanoDiscipuladoModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", req.PlanoID, liderID).
		First(&plano).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Plano não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar plano")
	}
	var discipulo discipuloModel.DiscipuloModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", req.DiscipuloID, liderID).
		First(&discipulo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discípulo não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar discípulo")
	}

	registros, err := progressoService.AtribuirPlano(
		ctrl.DB, liderID, req.DiscipuloID, req.PlanoID,
		configs.PrimeiraEtapaEmAndamento, ctrl.Now,
	)
	if err != nil {
		switch {
		case errors.Is(err, progressoService.ErrJaAtribuido):
			return fiber.NewError(fiber.StatusConflict, "Plano já atribuído a este discípulo")
		case errors.Is(err, progressoService.ErrPlanoSemEtapas):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Plano não possui etapas")
		default:
			log.Println("[ERROR] Falha ao atribuir plano:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atribuir plano")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plano atribuído com sucesso", registros)
}

// GET /api/u/progresso/discipulos
// Painel do líder: agregado por discípulo ativo, um PlanoProgresso por plano.
func (ctrl *ProgressoController) ProgressoDiscipulos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var discipulos []discipuloModel.DiscipuloModel
	if err := ctrl.DB.
		Where("lider_id = ? AND status = ?", liderID, discipuloModel.StatusAtivo).
		Order("nome ASC").
		Find(&discipulos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar discípulos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar discípulos")
	}

	var registros []progressoModel.ProgressoDiscipuloModel
	if err := ctrl.DB.
		Preload("Plano").Preload("Etapa").
		Where("lider_id = ?", liderID).
		Find(&registros).Error; err != nil {
		log.Println("[ERROR] Falha ao carregar progresso:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar progresso")
	}

	porDiscipulo := map[string][]progressoModel.ProgressoDiscipuloModel{}
	for _, r := range registros {
		key := r.DiscipuloID.String()
		porDiscipulo[key] = append(porDiscipulo[key], r)
	}

	resposta := make([]progressoDTO.DiscipuloProgressoResponse, 0, len(discipulos))
	for _, d := range discipulos {
		grupo := porDiscipulo[d.ID.String()]
		if len(grupo) == 0 {
			continue
		}
		planos, err := progressoService.CalcularProgresso(grupo)
		if err != nil {
			if errors.Is(err, progressoService.ErrDadosIncompletos) {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					"Progresso com vínculo quebrado (plano ou etapa removida sem cascade)")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao calcular progresso")
		}
		// no painel não precisamos do detalhe etapa a etapa
		for i := range planos {
			planos[i].Etapas = nil
		}
		resposta = append(resposta, progressoDTO.DiscipuloProgressoResponse{
			DiscipuloID: d.ID,
			Nome:        d.Nome,
			Planos:      planos,
		})
	}

	return helper.Success(c, "OK", resposta)
}

// GET /api/u/meus-planos
// Visão do discípulo logado, com as etapas na ordem do plano.
func (ctrl *ProgressoController) MeusPlanos(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var registros []progressoModel.ProgressoDiscipuloModel
	if err := ctrl.DB.
		Preload("Plano").Preload("Etapa").
		Where("discipulo_id = ?", userID).
		Find(&registros).Error; err != nil {
		log.Println("[ERROR] Falha ao carregar meus planos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar planos")
	}

	planos, err := progressoService.CalcularProgresso(registros)
	if err != nil {
		if errors.Is(err, progressoService.ErrDadosIncompletos) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Progresso com vínculo quebrado (plano ou etapa removida sem cascade)")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao calcular progresso")
	}

	return helper.Success(c, "OK", planos)
}

// PATCH /api/u/progresso/:id/concluir
// Transição só para frente; updated_at opcional como pré-condição.
func (ctrl *ProgressoController) ConcluirEtapa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	registroID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req progressoDTO.ConcluirEtapaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
		}
	}

	registro, err := ctrl.findRegistroAutorizado(registroID, userID)
	if err != nil {
		return err
	}

	if err := validarConclusao(registro, req.UpdatedAt); err != nil {
		return err
	}

	agora := ctrl.Now()
	if err := ctrl.DB.Model(registro).Updates(map[string]interface{}{
		"status":         progressoModel.StatusConcluido,
		"data_conclusao": agora,
		"updated_at":     agora,
	}).Error; err != nil {
		log.Println("[ERROR] Falha ao concluir etapa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao concluir etapa")
	}

	return helper.Success(c, "Etapa concluída com sucesso", registro)
}

// PUT /api/u/progresso/:id
// Ajuste pelo líder (status/observações), com a mesma pré-condição.
func (ctrl *ProgressoController) UpdateProgresso(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	registroID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req progressoDTO.UpdateProgressoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var registro progressoModel.ProgressoDiscipuloModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", registroID, liderID).
		First(&registro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Registro de progresso não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar registro")
	}

	if err := checarPreCondicao(&registro, req.UpdatedAt); err != nil {
		return err
	}

	agora := ctrl.Now()
	updates := map[string]interface{}{"updated_at": agora}
	if req.Status != nil {
		updates["status"] = *req.Status
		if *req.Status == progressoModel.StatusConcluido {
			updates["data_conclusao"] = agora
		} else {
			// reabertura explícita limpa a conclusão, nunca em silêncio
			updates["data_conclusao"] = nil
		}
	}
	if req.Observacoes != nil {
		updates["observacoes"] = *req.Observacoes
	}

	if err := ctrl.DB.Model(&registro).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar progresso:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar progresso")
	}

	return helper.Success(c, "Progresso atualizado com sucesso", registro)
}

// POST /api/u/meus-planos/:planoId/solicitar-remocao
// O discípulo não remove o plano: gera um alerta para o líder dono.
func (ctrl *ProgressoController) SolicitarRemocaoPlano(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	planoID, err := helper.ParseUUIDParam(c, "planoId")
	if err != nil {
		return err
	}

	var registro progressoModel.ProgressoDiscipuloModel
	if err := ctrl.DB.
		Where("discipulo_id = ? AND plano_id = ?", userID, planoID).
		First(&registro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Plano não está atribuído a você")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar atribuição")
	}

	alerta := alertaModel.AlertaModel{
		LiderID:     registro.LiderID,
		DiscipuloID: &registro.DiscipuloID,
		Tipo:        alertaModel.TipoSolicitacaoRemocaoPlano,
		Titulo:      "Solicitação de Remoção de Plano",
		Mensagem:    "Discípulo solicitou a remoção do plano de discipulado",
		DataAlerta:  ctrl.Now(),
	}
	if err := ctrl.DB.Create(&alerta).Error; err != nil {
		log.Println("[ERROR] Falha ao criar alerta:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar solicitação")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Solicitação enviada ao seu discipulador", alerta)
}

/* ================= helpers internos ================= */

// findRegistroAutorizado: só o discípulo atribuído ou o líder dono podem
// mexer no registro.
func (ctrl *ProgressoController) findRegistroAutorizado(registroID, userID interface{}) (*progressoModel.ProgressoDiscipuloModel, error) {
	var registro progressoModel.ProgressoDiscipuloModel
	if err := ctrl.DB.
		Where("id = ? AND (lider_id = ? OR discipulo_id = ?)", registroID, userID, userID).
		First(&registro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Registro de progresso não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar registro")
	}
	return &registro, nil
}

// validarConclusao: transição só para frente — concluir de novo é 409 —
// e depois a pré-condição opcional de updated_at.
func validarConclusao(registro *progressoModel.ProgressoDiscipuloModel, esperado *time.Time) error {
	if registro.Status == progressoModel.StatusConcluido {
		return fiber.NewError(fiber.StatusConflict, "Etapa já concluída")
	}
	return checarPreCondicao(registro, esperado)
}

func checarPreCondicao(registro *progressoModel.ProgressoDiscipuloModel, esperado *time.Time) error {
	if esperado == nil {
		return nil // sem pré-condição: last-write-wins, como na origem
	}
	if !registro.UpdatedAt.Equal(*esperado) {
		return fiber.NewError(fiber.StatusConflict, "Registro alterado por outra sessão; recarregue e tente de novo")
	}
	return nil
}
