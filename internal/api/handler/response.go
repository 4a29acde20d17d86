package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// writeJSON serializa a resposta de sucesso. Falha de encoding vira log: o
// status já foi enviado e não há mais o que responder ao cliente.
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}
