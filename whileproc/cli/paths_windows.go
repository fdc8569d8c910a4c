package cli

import (
	"os"
	"path/filepath"
)

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "AppData", "Roaming")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = filepath.Join(a.home, "AppData", "Local")
	}
	return filepath.Join(c, a.tag, "Logs")
}
