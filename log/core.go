// Package log sets up the logrus logger shared by are's packages.
package log

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var levelMap = map[string]logrus.Level{
	"warn":  logrus.WarnLevel,
	"info":  logrus.InfoLevel,
	"debug": logrus.DebugLevel,
	"trace": logrus.TraceLevel,
}

// ParseLevel parses one of warn, info, debug or trace.
func ParseLevel(s string) (logrus.Level, error) {
	if level, ok := levelMap[s]; ok {
		return level, nil
	}

	var allLevels []string
	for level := range levelMap {
		allLevels = append(allLevels, level)
	}
	sort.Strings(allLevels)

	return logrus.FatalLevel,
		fmt.Errorf("%v is not a valid level. Valid levels are %v", s, strings.Join(allLevels, ", "))
}

// Init configures the standard logrus logger to write to stderr at the
// given level.
func Init(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logrus.SetLevel(lvl)
	return nil
}

// EnsureLevel raises the standard logger's level to level if it is
// currently less verbose.
func EnsureLevel(level logrus.Level) {
	if !logrus.IsLevelEnabled(level) {
		logrus.SetLevel(level)
	}
}
