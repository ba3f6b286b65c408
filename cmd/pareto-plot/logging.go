package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

type logConfig struct {
	WithCaller bool
	Level      string
	LogFormat  string
	LogFile    string
}

func logConfigFromViper() *logConfig {
	level := viper.GetString("log-level")
	if viper.GetBool("verbose") && level != "trace" {
		level = "debug"
	}
	return &logConfig{
		Level:      level,
		LogFile:    viper.GetString("log-file"),
		LogFormat:  viper.GetString("log-format"),
		WithCaller: viper.GetBool("with-caller"),
	}
}

// initLogger replaces the global logger. Console output goes to out.
func initLogger(out io.Writer) error {
	logger, level, err := newLogger(logConfigFromViper(), out)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
	return nil
}

func newLogger(config *logConfig, out io.Writer) (zerolog.Logger, zerolog.Level, error) {
	level := zerolog.InfoLevel
	if config.Level != "" {
		parsed, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return zerolog.Nop(), zerolog.NoLevel, errors.Errorf("unknown log level %q", config.Level)
		}
		level = parsed
	}

	w := out
	if config.LogFormat == "text" {
		w = zerolog.ConsoleWriter{Out: out}
	}
	if config.LogFile != "" {
		w = zerolog.MultiLevelWriter(w, zerolog.ConsoleWriter{
			NoColor: true,
			Out: &lumberjack.Logger{
				Filename:   config.LogFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			},
		})
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if config.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), level, nil
}
