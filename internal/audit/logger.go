package audit

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Logger grava o trilho de ações no log estruturado. Não existe schema
// relacional nesta aplicação, então o destino é o zap, não uma tabela.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.log.Info("audit",
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
		zap.String("metadata", metaJSON),
	)
	return nil
}
