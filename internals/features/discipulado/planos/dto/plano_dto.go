package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	m "pastordigital_backend/internals/features/discipulado/planos/model"
)

/* =========================================================
   DIAS — aceita número JSON ou string numérica do form,
   mas rejeita lixo (nada de NaN silencioso).
   ========================================================= */

type Dias struct {
	Set   bool
	Value *int
}

func (d *Dias) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		d.Set = true
		d.Value = nil
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("duração estimada deve ser um número inteiro")
	}
	if n < 0 {
		return fmt.Errorf("duração estimada não pode ser negativa")
	}
	d.Set = true
	d.Value = &n
	return nil
}

/* =========================================================
   CREATE / UPDATE — Plano
   ========================================================= */

type CreatePlanoRequest struct {
	Nome                string `json:"nome" validate:"required,min=1,max=160"`
	Descricao           *string `json:"descricao"`
	NivelMaturidade     string `json:"nivel_maturidade" validate:"omitempty,oneof=Iniciante Intermediário Avançado Líder"`
	DuracaoEstimadaDias Dias   `json:"duracao_estimada_dias"`
}

func (r *CreatePlanoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	if r.Descricao != nil {
		d := strings.TrimSpace(*r.Descricao)
		if d == "" {
			r.Descricao = nil
		} else {
			r.Descricao = &d
		}
	}
	if r.NivelMaturidade == "" {
		r.NivelMaturidade = m.NivelIniciante
	}
}

func (r *CreatePlanoRequest) ToModel(liderID uuid.UUID) m.PlanoDiscipuladoModel {
	return m.PlanoDiscipuladoModel{
		LiderID:             liderID,
		Nome:                r.Nome,
		Descricao:           r.Descricao,
		NivelMaturidade:     r.NivelMaturidade,
		DuracaoEstimadaDias: r.DuracaoEstimadaDias.Value,
		Ativo:               true,
	}
}

type UpdatePlanoRequest struct {
	Nome                *string `json:"nome" validate:"omitempty,min=1,max=160"`
	Descricao           *string `json:"descricao"`
	NivelMaturidade     *string `json:"nivel_maturidade" validate:"omitempty,oneof=Iniciante Intermediário Avançado Líder"`
	DuracaoEstimadaDias Dias    `json:"duracao_estimada_dias"`
	Ativo               *bool   `json:"ativo"`
}

func (r *UpdatePlanoRequest) Apply(plano *m.PlanoDiscipuladoModel) {
	if r.Nome != nil {
		plano.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.Descricao != nil {
		d := strings.TrimSpace(*r.Descricao)
		if d == "" {
			plano.Descricao = nil
		} else {
			plano.Descricao = &d
		}
	}
	if r.NivelMaturidade != nil {
		plano.NivelMaturidade = *r.NivelMaturidade
	}
	if r.DuracaoEstimadaDias.Set {
		plano.DuracaoEstimadaDias = r.DuracaoEstimadaDias.Value
	}
	if r.Ativo != nil {
		plano.Ativo = *r.Ativo
	}
}

/* =========================================================
   CREATE / UPDATE — Etapa
   ========================================================= */

type CreateEtapaRequest struct {
	Nome                string  `json:"nome" validate:"required,min=1,max=160"`
	Descricao           *string `json:"descricao"`
	Ordem               int     `json:"ordem" validate:"min=0"`
	DuracaoEstimadaDias Dias    `json:"duracao_estimada_dias"`
	AtividadesSugeridas *string `json:"atividades_sugeridas"`
	VersiculosChave     *string `json:"versiculos_chave"`
	RecursosNecessarios *string `json:"recursos_necessarios"`
}

func (r *CreateEtapaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	trimPtr(&r.Descricao)
	trimPtr(&r.AtividadesSugeridas)
	trimPtr(&r.VersiculosChave)
	trimPtr(&r.RecursosNecessarios)
}

func (r *CreateEtapaRequest) ToModel(planoID uuid.UUID) m.EtapaPlanoModel {
	return m.EtapaPlanoModel{
		PlanoID:             planoID,
		Nome:                r.Nome,
		Descricao:           r.Descricao,
		Ordem:               r.Ordem,
		DuracaoEstimadaDias: r.DuracaoEstimadaDias.Value,
		AtividadesSugeridas: r.AtividadesSugeridas,
		VersiculosChave:     r.VersiculosChave,
		RecursosNecessarios: r.RecursosNecessarios,
	}
}

type UpdateEtapaRequest struct {
	Nome                *string `json:"nome" validate:"omitempty,min=1,max=160"`
	Descricao           *string `json:"descricao"`
	Ordem               *int    `json:"ordem" validate:"omitempty,min=0"`
	DuracaoEstimadaDias Dias    `json:"duracao_estimada_dias"`
	AtividadesSugeridas *string `json:"atividades_sugeridas"`
	VersiculosChave     *string `json:"versiculos_chave"`
	RecursosNecessarios *string `json:"recursos_necessarios"`
}

func (r *UpdateEtapaRequest) Apply(etapa *m.EtapaPlanoModel) {
	if r.Nome != nil {
		etapa.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.Descricao != nil {
		etapa.Descricao = r.Descricao
	}
	if r.Ordem != nil {
		etapa.Ordem = *r.Ordem
	}
	if r.DuracaoEstimadaDias.Set {
		etapa.DuracaoEstimadaDias = r.DuracaoEstimadaDias.Value
	}
	if r.AtividadesSugeridas != nil {
		etapa.AtividadesSugeridas = r.AtividadesSugeridas
	}
	if r.VersiculosChave != nil {
		etapa.VersiculosChave = r.VersiculosChave
	}
	if r.RecursosNecessarios != nil {
		etapa.RecursosNecessarios = r.RecursosNecessarios
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

// EtapasResponse embala a lista ordenada e um aviso quando há
// colisão de ordem (tolerada, mas vale sinalizar pro líder).
type EtapasResponse struct {
	Etapas []m.EtapaPlanoModel `json:"etapas"`
	Aviso  string              `json:"aviso,omitempty"`
}

// AvisoOrdemDuplicada monta o aviso de ordens repetidas, se houver.
func AvisoOrdemDuplicada(etapas []m.EtapaPlanoModel) string {
	seen := map[int]bool{}
	dups := map[int]bool{}
	for _, e := range etapas {
		if seen[e.Ordem] {
			dups[e.Ordem] = true
		}
		seen[e.Ordem] = true
	}
	if len(dups) == 0 {
		return ""
	}
	return "plano possui etapas com ordem repetida; a listagem usa ordem de criação como desempate"
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
