// Copyright 2020 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"
)

// Log settings
var Log *logConf

// logConf contains the parsed logging configuration.
type logConf struct {
	RootPath string
	Modes    []string
	Configs  []*loggerConf
}

// loggerConf contains the configuration of an individual logger.
type loggerConf struct {
	Buffer int64
	Config interface{}
}

// initLogConf returns the parsed logging configuration from the given INI
// file. It does not modify any global state, keys missing from a [log.*]
// section fall back to the values of the [log] section.
func initLogConf(cfg *ini.File) (_ *logConf, hasConsole bool, _ error) {
	rootPath := cfg.Section("log").Key("ROOT_PATH").MustString(filepath.Join(WorkDir(), "log"))
	modes := strings.Split(cfg.Section("log").Key("MODE").MustString("console"), ",")
	lc := &logConf{
		RootPath: ensureAbs(rootPath),
		Modes:    make([]string, 0, len(modes)),
		Configs:  make([]*loggerConf, 0, len(modes)),
	}

	// Iterate over [log.*] sections to gather configuration of individual loggers.
	levelMappings := map[string]log.Level{
		"trace": log.LevelTrace,
		"info":  log.LevelInfo,
		"warn":  log.LevelWarn,
		"error": log.LevelError,
		"fatal": log.LevelFatal,
	}
	for i := range modes {
		modes[i] = strings.ToLower(strings.TrimSpace(modes[i]))
		secName := "log." + modes[i]
		sec, err := cfg.GetSection(secName)
		if err != nil {
			return nil, false, errors.Errorf("missing configuration section [%s] for %q logger", secName, modes[i])
		}

		level := levelMappings[strings.ToLower(sec.Key("LEVEL").MustString("trace"))]
		c := &loggerConf{
			Buffer: sec.Key("BUFFER_LEN").MustInt64(100),
		}
		switch modes[i] {
		case log.DefaultConsoleName:
			hasConsole = true
			c.Config = log.ConsoleConfig{
				Level: level,
			}

		case log.DefaultFileName:
			c.Config = log.FileConfig{
				Level:    level,
				Filename: filepath.Join(lc.RootPath, "identy.log"),
				FileRotationConfig: log.FileRotationConfig{
					Rotate:   sec.Key("LOG_ROTATE").MustBool(true),
					Daily:    sec.Key("DAILY_ROTATE").MustBool(true),
					MaxSize:  1 << uint(sec.Key("MAX_SIZE_SHIFT").MustInt(28)),
					MaxLines: sec.Key("MAX_LINES").MustInt64(1000000),
					MaxDays:  sec.Key("MAX_DAYS").MustInt64(7),
				},
			}

		default:
			return nil, false, errors.Errorf("unrecognized logger mode %q", modes[i])
		}

		lc.Modes = append(lc.Modes, modes[i])
		lc.Configs = append(lc.Configs, c)
	}

	return lc, hasConsole, nil
}

// InitLogging initializes the logging service of the application.
func InitLogging() {
	lc, hasConsole, err := initLogConf(File)
	if err != nil {
		log.Fatal("Failed to load logging configuration: %v", err)
		return
	}

	for i, mode := range lc.Modes {
		c := lc.Configs[i]
		switch mode {
		case log.DefaultConsoleName:
			err = log.NewConsole(c.Buffer, c.Config)

		case log.DefaultFileName:
			logDir := filepath.Dir(c.Config.(log.FileConfig).Filename)
			err = os.MkdirAll(logDir, os.ModePerm)
			if err != nil {
				log.Fatal("Failed to create log directory %q: %v", logDir, err)
				return
			}
			err = log.NewFile(c.Buffer, c.Config)
		}
		if err != nil {
			log.Fatal("Failed to init %s logger: %v", mode, err)
			return
		}
		log.Trace("Log mode: %s (%s)", strings.Title(mode), levelName(c.Config))
	}

	// Because we always create a console logger as the primary logger at init time,
	// we need to remove it in case the user doesn't configure to use it after the
	// logging service is initialized.
	if !hasConsole {
		log.Remove(log.DefaultConsoleName)
	}

	Log = lc
}

// levelName returns the human-readable level name of the logger configuration.
func levelName(config interface{}) string {
	var level log.Level
	switch c := config.(type) {
	case log.ConsoleConfig:
		level = c.Level
	case log.FileConfig:
		level = c.Level
	}
	return strings.Title(strings.ToLower(level.String()))
}
