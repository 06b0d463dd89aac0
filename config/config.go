/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package config reads razor.toml, RAZOR_* variables and bound flags through viper.
package config

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	Name      = "razor"
	EnvPrefix = "RAZOR"
	Dir       = ".razor"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type Config struct {
	Root   string       `mapstructure:"root"`
	File   string       `mapstructure:"file"`
	Site   SiteConfig   `mapstructure:"site"`
	Server ServerConfig `mapstructure:"server"`
	Build  BuildConfig  `mapstructure:"build"`
}

type SiteConfig struct {
	Title     string `mapstructure:"title"`
	Tagline   string `mapstructure:"tagline"`
	InviteURL string `mapstructure:"invite_url"`
}

type ServerConfig struct {
	Addr  string `mapstructure:"addr"`
	Watch bool   `mapstructure:"watch"`
}

type BuildConfig struct {
	Out  string `mapstructure:"out"`
	Hook string `mapstructure:"hook"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// New prepares a viper instance with defaults and environment lookup.
// home is where ~/.razor lives; an empty home skips that search path.
func New(home string) *viper.Viper {
	v := viper.New()

	v.SetConfigName(Name)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home != "" {
		v.AddConfigPath(filepath.Join(home, Dir))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if home != "" {
		v.SetDefault("root", filepath.Join(home, Dir, "data"))
	}
	v.SetDefault("file", "")
	v.SetDefault("site.title", "Razor Bot")
	v.SetDefault("site.tagline", "Powerful commands to enhance your Discord server experience")
	v.SetDefault("site.invite_url", "#")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.watch", false)
	v.SetDefault("build.out", "public")
	v.SetDefault("build.hook", "")

	return v
}

// Read loads the settings file if one exists. An explicit path must exist.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Root == "" && cfg.File == "" {
		return Config{}, errors.New("decode config: neither root nor file is set")
	}
	return cfg, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
