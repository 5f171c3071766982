package config

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/pslog"
)

// Load reads the file at path, or at DefaultPath if path is empty. A
// "workspaces" flag in flags, when set on the command line, overrides the
// file. Load never fails: a missing or unreadable file, a line that is not a
// key=value setting, or an out of range value, is logged and replaced by its
// default.
func Load(path string, flags *pflag.FlagSet, log pslog.Logger) Config {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	cfg.Path = path

	v := viper.New()
	v.SetConfigType("env")
	v.SetDefault("workspaces", cfg.Workspaces)
	v.SetDefault("background_image", cfg.BackgroundImage)
	v.SetDefault("indicator_height", cfg.IndicatorHeight)
	if flags != nil {
		if f := flags.Lookup("workspaces"); f != nil {
			if err := v.BindPFlag("workspaces", f); err != nil {
				log.Warn("config flag bind failed", "flag", "workspaces", "err", err)
			}
		}
	}

	if data, err := os.ReadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("config file not found, using defaults", "path", path)
		} else {
			log.Warn("config file unreadable, using defaults", "path", path, "err", err)
		}
	} else if err := v.ReadConfig(bytes.NewReader(settingLines(data, path, log))); err != nil {
		log.Warn("config file unreadable, using defaults", "path", path, "err", err)
	} else {
		log.Info("config loaded", "path", path)
	}

	cfg.Workspaces = workspaces(v.GetString("workspaces"), log)
	cfg.BackgroundImage = strings.TrimSpace(v.GetString("background_image"))
	cfg.IndicatorHeight = indicatorHeight(v.GetString("indicator_height"), log)
	return cfg
}

// settingLines returns data without the lines that are neither blank, a
// comment, nor a key=value setting. Each dropped line is logged.
func settingLines(data []byte, path string, log pslog.Logger) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.Contains(trimmed, "=") {
			log.Warn("config line ignored", "path", path, "line", n, "text", trimmed)
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func workspaces(s string, log pslog.Logger) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	switch {
	case err != nil || n < 1:
		log.Warn("invalid workspaces value", "value", s, "using", DefaultWorkspaces)
		return DefaultWorkspaces
	case n > MaxWorkspaces:
		log.Warn("workspaces value too large", "value", n, "using", MaxWorkspaces)
		return MaxWorkspaces
	}
	return n
}

func indicatorHeight(s string, log pslog.Logger) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	switch {
	case err != nil || n < 0:
		log.Warn("invalid indicator_height value", "value", s, "using", 0)
		return 0
	case n > MaxIndicatorHeight:
		log.Warn("indicator_height value too large", "value", n, "using", MaxIndicatorHeight)
		return MaxIndicatorHeight
	}
	return n
}
