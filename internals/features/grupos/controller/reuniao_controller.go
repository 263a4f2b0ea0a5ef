package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	grupoDTO "pastordigital_backend/internals/features/grupos/dto"
	grupoModel "pastordigital_backend/internals/features/grupos/model"
	grupoService "pastordigital_backend/internals/features/grupos/service"
	helper "pastordigital_backend/internals/helpers"
)

type ReuniaoController struct {
	DB *gorm.DB
}

func NewReuniaoController(db *gorm.DB) *ReuniaoController {
	return &ReuniaoController{DB: db}
}

// GET /api/u/reunioes?group_id=
func (ctrl *ReuniaoController) ListReunioes(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	query := ctrl.DB.Model(&grupoModel.GroupMeetingModel{}).
		Joins("JOIN house_groups g ON g.id = group_meetings.group_id").
		Where("g.lider_id = ?", liderID)

	if raw := c.Query("group_id"); raw != "" {
		groupID, errParse := uuid.Parse(raw)
		if errParse != nil {
			return fiber.NewError(fiber.StatusBadRequest, "group_id inválido")
		}
		query = query.Where("group_meetings.group_id = ?", groupID)
	}

	var reunioes []grupoModel.GroupMeetingModel
	if err := query.
		Preload("HouseGroup").
		Order("group_meetings.data_reuniao DESC, group_meetings.created_at DESC").
		Find(&reunioes).Error; err != nil {
		log.Println("[ERROR] Falha ao listar reuniões:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar reuniões")
	}

	return helper.Success(c, "OK", reunioes)
}

// POST /api/u/reunioes
func (ctrl *ReuniaoController) CreateReuniao(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req grupoDTO.CreateReuniaoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var grupo grupoModel.HouseGroupModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", req.GroupID, liderID).
		First(&grupo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Grupo não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar grupo")
	}

	dataReuniao, err := helper.ParseDataISO(req.DataReuniao)
	if err != nil {
		return err
	}
	reuniao := grupoModel.GroupMeetingModel{
		GroupID:          req.GroupID,
		DataReuniao:      datatypes.Date(dataReuniao),
		TemaEstudo:       req.TemaEstudo,
		VersiculoBase:    req.VersiculoBase,
		AnotacoesReuniao: req.AnotacoesReuniao,
		Observacoes:      req.Observacoes,
	}
	if req.TotalVisitantes != nil {
		reuniao.TotalVisitantes = *req.TotalVisitantes
	}
	if req.DecisoesFe != nil {
		reuniao.DecisoesFe = *req.DecisoesFe
	}

	if err := ctrl.DB.Create(&reuniao).Error; err != nil {
		log.Println("[ERROR] Falha ao criar reunião:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar reunião")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Reunião registrada com sucesso", reuniao)
}

// PUT /api/u/reunioes/:id
func (ctrl *ReuniaoController) UpdateReuniao(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	reuniaoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req grupoDTO.UpdateReuniaoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reuniao, err := ctrl.findReuniaoDoLider(reuniaoID, liderID)
	if err != nil {
		return err
	}

	if req.DataReuniao != nil {
		t, errParse := helper.ParseDataISO(*req.DataReuniao)
		if errParse != nil {
			return errParse
		}
		reuniao.DataReuniao = datatypes.Date(t)
	}
	if req.TemaEstudo != nil {
		reuniao.TemaEstudo = req.TemaEstudo
	}
	if req.VersiculoBase != nil {
		reuniao.VersiculoBase = req.VersiculoBase
	}
	if req.AnotacoesReuniao != nil {
		reuniao.AnotacoesReuniao = req.AnotacoesReuniao
	}
	if req.DecisoesFe != nil {
		reuniao.DecisoesFe = *req.DecisoesFe
	}
	if req.Observacoes != nil {
		reuniao.Observacoes = req.Observacoes
	}

	if err := ctrl.DB.Save(reuniao).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar reunião:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar reunião")
	}

	return helper.Success(c, "Reunião atualizada com sucesso", reuniao)
}

// DELETE /api/u/reunioes/:id
func (ctrl *ReuniaoController) DeleteReuniao(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	reuniaoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	reuniao, err := ctrl.findReuniaoDoLider(reuniaoID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", reuniao.ID).
			Delete(&grupoModel.MeetingAttendanceModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover presenças")
		}
		if err := tx.Delete(reuniao).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover reunião")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Reunião excluída com sucesso", nil)
}

// GET /api/u/reunioes/:id/presencas
func (ctrl *ReuniaoController) ListPresencas(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	reuniaoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := ctrl.findReuniaoDoLider(reuniaoID, liderID); err != nil {
		return err
	}

	var presencas []grupoModel.MeetingAttendanceModel
	if err := ctrl.DB.
		Where("meeting_id = ?", reuniaoID).
		Order("created_at ASC").
		Find(&presencas).Error; err != nil {
		log.Println("[ERROR] Falha ao listar presenças:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar presenças")
	}

	return helper.Success(c, "OK", presencas)
}

// PATCH /api/u/reunioes/:id/presencas
// Upsert em lote; os totais da reunião são sempre recontados a partir
// do que ficou gravado, nunca somados incrementalmente.
func (ctrl *ReuniaoController) RegistrarPresencas(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	reuniaoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req grupoDTO.RegistrarPresencasRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reuniao, err := ctrl.findReuniaoDoLider(reuniaoID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Presencas {
			var existente grupoModel.MeetingAttendanceModel
			errFind := tx.Where("meeting_id = ? AND member_id = ?", reuniao.ID, item.MemberID).
				First(&existente).Error
			switch {
			case errFind == nil:
				if err := tx.Model(&existente).Updates(map[string]interface{}{
					"presente":        item.Presente,
					"visitante":       item.Visitante,
					"motivo_ausencia": item.MotivoAusencia,
				}).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar presença")
				}
			case errors.Is(errFind, gorm.ErrRecordNotFound):
				nova := grupoModel.MeetingAttendanceModel{
					MeetingID:      reuniao.ID,
					MemberID:       item.MemberID,
					Presente:       item.Presente,
					Visitante:      item.Visitante,
					MotivoAusencia: item.MotivoAusencia,
				}
				if err := tx.Create(&nova).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar presença")
				}
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar presença")
			}
		}

		var presencas []grupoModel.MeetingAttendanceModel
		if err := tx.Where("meeting_id = ?", reuniao.ID).Find(&presencas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao recontar presenças")
		}
		presentes, visitantes := grupoService.ContarPresencas(presencas)
		if err := tx.Model(reuniao).Updates(map[string]interface{}{
			"total_presentes":  presentes,
			"total_visitantes": visitantes,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar totais da reunião")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Presenças registradas com sucesso", reuniao)
}

func (ctrl *ReuniaoController) findReuniaoDoLider(reuniaoID, liderID interface{}) (*grupoModel.GroupMeetingModel, error) {
	var reuniao grupoModel.GroupMeetingModel
	if err := ctrl.DB.
		Joins("JOIN house_groups g ON g.id = group_meetings.group_id").
		Where("group_meetings.id = ? AND g.lider_id = ?", reuniaoID, liderID).
		First(&reuniao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Reunião não encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar reunião")
	}
	return &reuniao, nil
}
