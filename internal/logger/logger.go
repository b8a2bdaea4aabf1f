// Package logger configura o logger global (zap) usado em toda a aplicação.
package logger

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init constrói o logger conforme nível e formato e o instala como global.
// O retorno deve receber Sync antes do processo encerrar.
func Init(level, format string) (*zap.Logger, error) {
	var zapCfg zap.Config
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, eris.Wrap(err, "logger: nível inválido")
	}
	zapCfg.Level.SetLevel(lvl)

	log, err := zapCfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "logger: falha ao construir")
	}
	zap.ReplaceGlobals(log)

	return log, nil
}
