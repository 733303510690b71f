package config

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Prepare returns the console logger: info and debug go to stdout, errors to
// stderr.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	var minLevel zapcore.Level
	switch conf.Level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelNormal, "":
		minLevel = zapcore.InfoLevel
	case LevelDebug:
		minLevel = zapcore.DebugLevel
	default:
		return nil, errors.New("config: unknown log level " + conf.Level)
	}

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return minLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(os.Stdout)), zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(newEncoder(encoderConfig(os.Stderr)), zapcore.Lock(os.Stderr), highPriority),
	)
	return zap.New(core).Named("noir"), nil
}

func encoderConfig(stream *os.File) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

// When logging error to console - do not output verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
