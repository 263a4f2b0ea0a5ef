package service

import (
	grupoModel "pastordigital_backend/internals/features/grupos/model"
)

// ContarPresencas refaz os totais de uma reunião a partir da lista de
// presenças. Visitante só conta como presente se também estiver marcado
// presente.
func ContarPresencas(presencas []grupoModel.MeetingAttendanceModel) (presentes, visitantes int) {
	for _, p := range presencas {
		if p.Presente {
			presentes++
		}
		if p.Visitante {
			visitantes++
		}
	}
	return presentes, visitantes
}
