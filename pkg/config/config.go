// Package config loads toolkit settings from a TOML file and the
// environment using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ha1tch/curlyarc-toolkit/pkg/arcfile"
	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
)

// Configuration keys.
const (
	KeyWaveLength  = "defaults.wave_length"
	KeyAmplitude   = "defaults.amplitude"
	KeyCurly       = "defaults.curly"
	KeyWidth       = "canvas.width"
	KeyHeight      = "canvas.height"
	KeyX1          = "canvas.x1"
	KeyY1          = "canvas.y1"
	KeyX2          = "canvas.x2"
	KeyY2          = "canvas.y2"
	KeySupersample = "render.supersample"
	KeyTitle       = "render.title"
	KeyOpaque      = "editor.opaque"
)

// EnvPrefix is prepended to environment overrides, e.g. CURLYARC_CANVAS_WIDTH.
const EnvPrefix = "CURLYARC"

// FileName is the base name of the config file searched for when no
// explicit path is given.
const FileName = "curlyarc"

// Load reads the configuration. With an empty path it looks for
// curlyarc.toml in the working directory and then in
// $HOME/.config/curlyarc; a missing file is not an error. An explicit
// path must exist.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	c := arcfile.DefaultCanvas()
	png := arcfile.DefaultPNGOptions()

	v.SetDefault(KeyWaveLength, curlyarc.DefaultWaveLength)
	v.SetDefault(KeyAmplitude, curlyarc.DefaultAmplitude)
	v.SetDefault(KeyCurly, curlyarc.DefaultIsCurly)
	v.SetDefault(KeyWidth, c.Width)
	v.SetDefault(KeyHeight, c.Height)
	v.SetDefault(KeyX1, c.X1)
	v.SetDefault(KeyY1, c.Y1)
	v.SetDefault(KeyX2, c.X2)
	v.SetDefault(KeyY2, c.Y2)
	v.SetDefault(KeySupersample, png.Supersample)
	v.SetDefault(KeyTitle, "")
	v.SetDefault(KeyOpaque, false)
}

// Defaults returns arc defaults seeded from the configuration.
func Defaults(v *viper.Viper) *curlyarc.Defaults {
	d := curlyarc.NewDefaults()
	d.SetWaveLength(v.GetFloat64(KeyWaveLength))
	d.SetAmplitude(v.GetFloat64(KeyAmplitude))
	d.SetIsCurly(v.GetBool(KeyCurly))
	return d
}

// Canvas returns the configured canvas for new scenes.
func Canvas(v *viper.Viper) arcfile.Canvas {
	return arcfile.Canvas{
		Width:  v.GetInt(KeyWidth),
		Height: v.GetInt(KeyHeight),
		X1:     v.GetFloat64(KeyX1),
		Y1:     v.GetFloat64(KeyY1),
		X2:     v.GetFloat64(KeyX2),
		Y2:     v.GetFloat64(KeyY2),
	}
}

// PNGOptions returns PNG rendering options.
func PNGOptions(v *viper.Viper) arcfile.PNGOptions {
	opts := arcfile.DefaultPNGOptions()
	opts.Supersample = v.GetInt(KeySupersample)
	opts.Title = v.GetString(KeyTitle)
	return opts
}

// SVGOptions returns SVG rendering options.
func SVGOptions(v *viper.Viper) arcfile.SVGOptions {
	opts := arcfile.DefaultSVGOptions()
	opts.Title = v.GetString(KeyTitle)
	return opts
}

// Opaque reports whether the editor starts in opaque (live) mode.
func Opaque(v *viper.Viper) bool {
	return v.GetBool(KeyOpaque)
}
