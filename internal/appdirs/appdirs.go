// Package appdirs locates the local directories of the calculator.
package appdirs

import (
	"os"
	"path/filepath"

	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName        = "exprcalc"
	configFileName = "config.yaml"
	logFileName    = "exprcalc.log"
)

// AppDirs represents the app's local directories for storing logs etc.
type AppDirs struct {
	Config string
	Log    string
}

// New returns the directories of the current user.
// The directories are not created.
func New() AppDirs {
	ad := xappdirs.New(appName)
	x := AppDirs{
		Config: ad.UserConfig(),
		Log:    ad.UserLog(),
	}
	return x
}

// ConfigFile returns the path of the default config file.
func (ad AppDirs) ConfigFile() string {
	return filepath.Join(ad.Config, configFileName)
}

// InitLogFile creates the log directory if needed and returns the path of the log file.
func (ad AppDirs) InitLogFile() (string, error) {
	if err := os.MkdirAll(ad.Log, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(ad.Log, logFileName), nil
}
