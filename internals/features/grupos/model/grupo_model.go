package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

const (
	FuncaoMembro    = "membro"
	FuncaoAuxiliar  = "auxiliar"
	FuncaoAnfitriao = "anfitriao"
)

type HouseGroupModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID        uuid.UUID `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	Nome           string    `gorm:"column:nome;not null" json:"nome"`
	Endereco       *string   `gorm:"column:endereco" json:"endereco"`
	Cidade         *string   `gorm:"column:cidade" json:"cidade"`
	Estado         *string   `gorm:"column:estado" json:"estado"`
	CEP            *string   `gorm:"column:cep" json:"cep"`
	DiaSemana      int       `gorm:"column:dia_semana;not null;default:0" json:"dia_semana"`
	Horario        string    `gorm:"column:horario;not null;default:'19:00'" json:"horario"`
	MaximoMembros  int       `gorm:"column:maximo_membros;not null;default:15" json:"maximo_membros"`
	Ativo          bool      `gorm:"column:ativo;not null;default:true" json:"ativo"`
	Observacoes    *string   `gorm:"column:observacoes" json:"observacoes"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HouseGroupModel) TableName() string {
	return "house_groups"
}

type GroupMemberModel struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GroupID      uuid.UUID       `gorm:"column:group_id;type:uuid;not null" json:"group_id"`
	MemberID     uuid.UUID       `gorm:"column:member_id;type:uuid;not null" json:"member_id"`
	DataIngresso *datatypes.Date `gorm:"column:data_ingresso" json:"data_ingresso"`
	Funcao       string          `gorm:"column:funcao;not null;default:'membro'" json:"funcao"`
	Ativo        bool            `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Discipulo *discipuloModel.DiscipuloModel `gorm:"foreignKey:MemberID" json:"discipulo,omitempty"`
}

func (GroupMemberModel) TableName() string {
	return "group_members"
}

type GroupMeetingModel struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GroupID          uuid.UUID      `gorm:"column:group_id;type:uuid;not null" json:"group_id"`
	DataReuniao      datatypes.Date `gorm:"column:data_reuniao;not null" json:"data_reuniao"`
	TemaEstudo       *string        `gorm:"column:tema_estudo" json:"tema_estudo"`
	VersiculoBase    *string        `gorm:"column:versiculo_base" json:"versiculo_base"`
	AnotacoesReuniao *string        `gorm:"column:anotacoes_reuniao" json:"anotacoes_reuniao"`
	TotalPresentes   int            `gorm:"column:total_presentes;not null;default:0" json:"total_presentes"`
	TotalVisitantes  int            `gorm:"column:total_visitantes;not null;default:0" json:"total_visitantes"`
	DecisoesFe       int            `gorm:"column:decisoes_fe;not null;default:0" json:"decisoes_fe"`
	Observacoes      *string        `gorm:"column:observacoes" json:"observacoes"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	HouseGroup *HouseGroupModel `gorm:"foreignKey:GroupID" json:"house_group,omitempty"`
}

func (GroupMeetingModel) TableName() string {
	return "group_meetings"
}

type MeetingAttendanceModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MeetingID      uuid.UUID `gorm:"column:meeting_id;type:uuid;not null" json:"meeting_id"`
	MemberID       uuid.UUID `gorm:"column:member_id;type:uuid;not null" json:"member_id"`
	Presente       bool      `gorm:"column:presente;not null;default:false" json:"presente"`
	Visitante      bool      `gorm:"column:visitante;not null;default:false" json:"visitante"`
	MotivoAusencia *string   `gorm:"column:motivo_ausencia" json:"motivo_ausencia"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MeetingAttendanceModel) TableName() string {
	return "meeting_attendance"
}
