package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var L *zap.Logger

// Init sets up the process logger. prod writes JSON to a rotating file,
// anything else gets the console development logger.
func Init(env, logFile string) {
	if env == "prod" {
		logWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(logWriter),
			zap.InfoLevel,
		)

		L = zap.New(core, zap.AddCaller())
		return
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	L = l
}
