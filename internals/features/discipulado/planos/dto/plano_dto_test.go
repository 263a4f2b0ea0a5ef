package dto

import (
	"testing"

	m "pastordigital_backend/internals/features/discipulado/planos/model"
)

func TestDiasUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantNil bool
		want    int
	}{
		{name: "numero", input: "30", want: 30},
		{name: "string numerica", input: `"45"`, want: 45},
		{name: "zero", input: "0", want: 0},
		{name: "null", input: "null", wantNil: true},
		{name: "string vazia", input: `""`, wantNil: true},
		{name: "lixo", input: `"abc"`, wantErr: true},
		{name: "decimal", input: "3.5", wantErr: true},
		{name: "negativo", input: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dias
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("esperava erro para %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalJSON(%q): %v", tt.input, err)
			}
			if !d.Set {
				t.Fatalf("Set deveria ser true após unmarshal")
			}
			if tt.wantNil {
				if d.Value != nil {
					t.Fatalf("Value = %d, quer nil", *d.Value)
				}
				return
			}
			if d.Value == nil || *d.Value != tt.want {
				t.Fatalf("Value = %v, quer %d", d.Value, tt.want)
			}
		})
	}
}

func TestAvisoOrdemDuplicada(t *testing.T) {
	semDup := []m.EtapaPlanoModel{{Ordem: 1}, {Ordem: 2}, {Ordem: 3}}
	if aviso := AvisoOrdemDuplicada(semDup); aviso != "" {
		t.Errorf("sem duplicatas deveria retornar vazio, veio %q", aviso)
	}

	comDup := []m.EtapaPlanoModel{{Ordem: 2}, {Ordem: 2}, {Ordem: 1}}
	if aviso := AvisoOrdemDuplicada(comDup); aviso == "" {
		t.Errorf("ordens repetidas deveriam gerar aviso")
	}

	if aviso := AvisoOrdemDuplicada(nil); aviso != "" {
		t.Errorf("lista vazia deveria retornar vazio, veio %q", aviso)
	}
}

func TestCreatePlanoRequestNormalize(t *testing.T) {
	descricao := "   "
	req := CreatePlanoRequest{Nome: "  Fundamentos  ", Descricao: &descricao}
	req.Normalize()

	if req.Nome != "Fundamentos" {
		t.Errorf("Nome = %q, quer %q", req.Nome, "Fundamentos")
	}
	if req.Descricao != nil {
		t.Errorf("descrição só de espaços deveria virar nil")
	}
	if req.NivelMaturidade != m.NivelIniciante {
		t.Errorf("nível vazio deveria cair para %q, veio %q", m.NivelIniciante, req.NivelMaturidade)
	}
}
