// Package config provides configuration loading for the font converter.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
// The loader maps each underscore after the prefix to a key separator,
// so FONT2SVG_SPECIMEN_TEXT sets specimen.text.
const EnvPrefix = "FONT2SVG_"

// Config holds the application configuration.
type Config struct {
	Format          string   `koanf:"format"`
	CollectionIndex int      `koanf:"index"`
	Specimen        Specimen `koanf:"specimen"`
}

// Specimen configures the PDF specimen sheet.
type Specimen struct {
	Text   string  `koanf:"text"`
	Size   float64 `koanf:"size"`
	Glyphs int     `koanf:"glyphs"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Format:          "svg",
		CollectionIndex: 0,
		Specimen: Specimen{
			Text:   "The quick brown fox jumps over the lazy dog. 0123456789",
			Glyphs: 512,
		},
	}
}

// Load returns the application configuration using go-libs config-loader.
// Values resolve from defaults, then environment, then the changed flags
// of flags (which may be nil). Flag names are config keys.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg, err := load(flags)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func load(flags *pflag.FlagSet) (Config, error) {
	if flags == nil {
		return configloader.NewConfigLoader(
			configloader.WithDefaults(Defaults()),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	}

	return configloader.NewConfigLoader(
		configloader.WithDefaults(Defaults()),
		configloader.WithEnv[Config](EnvPrefix),
		configloader.WithFlags[Config](flags),
	).Load()
}
