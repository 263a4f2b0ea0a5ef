package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaModel "pastordigital_backend/internals/features/alertas/model"
	grupoDTO "pastordigital_backend/internals/features/grupos/dto"
	grupoModel "pastordigital_backend/internals/features/grupos/model"
	helper "pastordigital_backend/internals/helpers"
)

type GrupoController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewGrupoController(db *gorm.DB) *GrupoController {
	return &GrupoController{DB: db, Now: time.Now}
}

// GET /api/u/grupos
func (ctrl *GrupoController) ListGrupos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var grupos []grupoModel.HouseGroupModel
	if err := ctrl.DB.
		Where("lider_id = ?", liderID).
		Order("created_at DESC").
		Find(&grupos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar grupos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar grupos")
	}

	return helper.Success(c, "OK", grupos)
}

// POST /api/u/grupos
func (ctrl *GrupoController) CreateGrupo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req grupoDTO.CreateGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo := grupoModel.HouseGroupModel{
		LiderID:       liderID,
		Nome:          req.Nome,
		Endereco:      req.Endereco,
		Cidade:        req.Cidade,
		Estado:        req.Estado,
		CEP:           req.CEP,
		Horario:       "19:00",
		MaximoMembros: 15,
		Ativo:         true,
		Observacoes:   req.Observacoes,
	}
	if req.DiaSemana != nil {
		grupo.DiaSemana = *req.DiaSemana
	}
	if req.Horario != nil {
		grupo.Horario = *req.Horario
	}
	if req.MaximoMembros != nil {
		grupo.MaximoMembros = *req.MaximoMembros
	}

	if err := ctrl.DB.Create(&grupo).Error; err != nil {
		log.Println("[ERROR] Falha ao criar grupo:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar grupo")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grupo criado com sucesso", grupo)
}

// PUT /api/u/grupos/:id
func (ctrl *GrupoController) UpdateGrupo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req grupoDTO.UpdateGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo, err := ctrl.findGrupoDoLider(grupoID, liderID)
	if err != nil {
		return err
	}

	if req.Nome != nil {
		grupo.Nome = *req.Nome
	}
	if req.Endereco != nil {
		grupo.Endereco = req.Endereco
	}
	if req.Cidade != nil {
		grupo.Cidade = req.Cidade
	}
	if req.Estado != nil {
		grupo.Estado = req.Estado
	}
	if req.CEP != nil {
		grupo.CEP = req.CEP
	}
	if req.DiaSemana != nil {
		grupo.DiaSemana = *req.DiaSemana
	}
	if req.Horario != nil {
		grupo.Horario = *req.Horario
	}
	if req.MaximoMembros != nil {
		grupo.MaximoMembros = *req.MaximoMembros
	}
	if req.Ativo != nil {
		grupo.Ativo = *req.Ativo
	}
	if req.Observacoes != nil {
		grupo.Observacoes = req.Observacoes
	}

	if err := ctrl.DB.Save(grupo).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar grupo:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar grupo")
	}

	return helper.Success(c, "Grupo atualizado com sucesso", grupo)
}

// DELETE /api/u/grupos/:id?cascade=true
func (ctrl *GrupoController) DeleteGrupo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	cascade := c.QueryBool("cascade", false)

	grupo, err := ctrl.findGrupoDoLider(grupoID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&grupoModel.GroupMeetingModel{}).
			Where("group_id = ?", grupo.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar reuniões vinculadas")
		}
		if cnt > 0 && !cascade {
			return fiber.NewError(fiber.StatusConflict,
				"Grupo possui reuniões registradas; use cascade=true para remover tudo")
		}
		if cascade {
			if err := tx.Where("meeting_id IN (?)",
				tx.Session(&gorm.Session{NewDB: true}).
					Model(&grupoModel.GroupMeetingModel{}).
					Select("id").
					Where("group_id = ?", grupo.ID)).
				Delete(&grupoModel.MeetingAttendanceModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover presenças vinculadas")
			}
			if err := tx.Where("group_id = ?", grupo.ID).
				Delete(&grupoModel.GroupMeetingModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover reuniões vinculadas")
			}
		}
		if err := tx.Where("group_id = ?", grupo.ID).
			Delete(&grupoModel.GroupMemberModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover membros do grupo")
		}
		if err := tx.Delete(grupo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover grupo")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Grupo excluído com sucesso", nil)
}

// GET /api/u/grupos/:id/membros
func (ctrl *GrupoController) ListMembros(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := ctrl.findGrupoDoLider(grupoID, liderID); err != nil {
		return err
	}

	var membros []grupoModel.GroupMemberModel
	if err := ctrl.DB.
		Preload("Discipulo").
		Where("group_id = ? AND ativo = true", grupoID).
		Order("created_at ASC").
		Find(&membros).Error; err != nil {
		log.Println("[ERROR] Falha ao listar membros:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar membros")
	}

	return helper.Success(c, "OK", membros)
}

// POST /api/u/grupos/:id/membros
func (ctrl *GrupoController) AddMembro(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req grupoDTO.AddMembroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo, err := ctrl.findGrupoDoLider(grupoID, liderID)
	if err != nil {
		return err
	}

	var membro grupoModel.GroupMemberModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var ativos int64
		if err := tx.Model(&grupoModel.GroupMemberModel{}).
			Where("group_id = ? AND ativo = true", grupo.ID).
			Count(&ativos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar membros")
		}
		if int(ativos) >= grupo.MaximoMembros {
			return fiber.NewError(fiber.StatusConflict, "Grupo atingiu o máximo de membros")
		}

		var cnt int64
		if err := tx.Model(&grupoModel.GroupMemberModel{}).
			Where("group_id = ? AND member_id = ? AND ativo = true", grupo.ID, req.MemberID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar membro")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Discípulo já faz parte do grupo")
		}

		membro = grupoModel.GroupMemberModel{
			GroupID:  grupo.ID,
			MemberID: req.MemberID,
			Funcao:   grupoModel.FuncaoMembro,
			Ativo:    true,
		}
		if req.Funcao != nil {
			membro.Funcao = *req.Funcao
		}
		if err := tx.Create(&membro).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao adicionar membro")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membro adicionado com sucesso", membro)
}

// DELETE /api/u/grupos/:id/membros/:membroId — desativa, não apaga histórico
func (ctrl *GrupoController) RemoveMembro(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	membroID, err := helper.ParseUUIDParam(c, "membroId")
	if err != nil {
		return err
	}

	if _, err := ctrl.findGrupoDoLider(grupoID, liderID); err != nil {
		return err
	}

	result := ctrl.DB.Model(&grupoModel.GroupMemberModel{}).
		Where("id = ? AND group_id = ?", membroID, grupoID).
		Update("ativo", false)
	if result.Error != nil {
		log.Println("[ERROR] Falha ao remover membro:", result.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover membro")
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membro não encontrado")
	}

	return helper.Success(c, "Membro removido com sucesso", nil)
}

// GET /api/u/grupos/buscar?cidade= — grupos ativos de qualquer líder
func (ctrl *GrupoController) BuscarGrupos(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromLocals(c); err != nil {
		return err
	}

	query := ctrl.DB.Model(&grupoModel.HouseGroupModel{}).
		Where("ativo = true")

	if cidade := c.Query("cidade"); cidade != "" {
		query = query.Where("cidade ILIKE ? OR estado ILIKE ?", "%"+cidade+"%", "%"+cidade+"%")
	}

	var grupos []grupoModel.HouseGroupModel
	if err := query.Order("cidade ASC, nome ASC").Find(&grupos).Error; err != nil {
		log.Println("[ERROR] Falha ao buscar grupos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar grupos")
	}

	return helper.Success(c, "OK", grupos)
}

// POST /api/u/grupos/:id/solicitar-entrada
// A solicitação vira um alerta para o líder do grupo.
func (ctrl *GrupoController) SolicitarEntrada(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	grupoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var grupo grupoModel.HouseGroupModel
	if err := ctrl.DB.Where("id = ? AND ativo = true", grupoID).First(&grupo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Grupo não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar grupo")
	}

	var cnt int64
	if err := ctrl.DB.Model(&grupoModel.GroupMemberModel{}).
		Where("group_id = ? AND member_id = ? AND ativo = true", grupo.ID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar participação")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Você já faz parte deste grupo")
	}

	alerta := alertaModel.AlertaModel{
		LiderID:     grupo.LiderID,
		DiscipuloID: &userID,
		Tipo:        alertaModel.TipoSolicitacaoGrupo,
		Titulo:      "Nova Solicitação de Participação",
		Mensagem:    fmt.Sprintf("Usuário solicitou participação no grupo %q", grupo.Nome),
		DataAlerta:  ctrl.Now(),
		Ativo:       true,
	}
	if err := ctrl.DB.Create(&alerta).Error; err != nil {
		log.Println("[ERROR] Falha ao registrar solicitação de entrada:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao enviar solicitação")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Solicitação enviada! O líder do grupo será notificado", alerta)
}

func (ctrl *GrupoController) findGrupoDoLider(grupoID, liderID interface{}) (*grupoModel.HouseGroupModel, error) {
	var grupo grupoModel.HouseGroupModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", grupoID, liderID).First(&grupo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grupo não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar grupo")
	}
	return &grupo, nil
}
