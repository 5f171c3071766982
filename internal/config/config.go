// Package config loads the eldinwm configuration file.
//
// The file is a flat list of key=value lines. Blank lines and lines starting
// with # are ignored, and values may be quoted:
//
//	# eldinwm.conf
//	workspaces=6
//	background_image="/usr/share/backgrounds/eldin.png"
//	indicator_height=28
package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultWorkspaces = 4
	MaxWorkspaces     = 16

	MaxIndicatorHeight = 64
)

// Config holds the settings read at startup. They are not reloaded.
type Config struct {
	Workspaces int
	// BackgroundImage is accepted for compatibility but not drawn.
	BackgroundImage string
	// IndicatorHeight is the height in pixels of the workspace strip at the
	// top of every output. Zero disables it.
	IndicatorHeight int

	// Path is the file the values came from, or would have come from.
	Path string
}

func Default() Config {
	return Config{Workspaces: DefaultWorkspaces}
}

// DefaultPath returns $XDG_CONFIG_HOME/eldinwm/eldinwm.conf when
// XDG_CONFIG_HOME is set, else ~/.config/eldinwm/eldinwm.conf when that file
// exists, else /etc/eldinwm/eldinwm.conf.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eldinwm", "eldinwm.conf")
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "eldinwm", "eldinwm.conf")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return systemPath
}

const systemPath = "/etc/eldinwm/eldinwm.conf"
