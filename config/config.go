package config

import (
	"os"
	"gopkg.in/yaml.v3"

	"pixelveil/util"
)

/*
 * application configuration, stored as plain yaml in the user's
 * pixelveil folder. everything has a usable default so a missing file
 * is not an error for the CLI.
 */

// ServerConfiguration describes the local API server: where to listen
// and which static pages to serve next to the JSON endpoints.
type ServerConfiguration struct {
	Address		string			`yaml:"address"`
	NotFoundPage	string			`yaml:"not_found_page"`
	Pages		map[string]string	`yaml:"pages"`
}

// SteganoConfig holds codec-adjacent options. NormalizeText runs NFC
// normalization over message input before hiding it.
type SteganoConfig struct {
	NormalizeText	bool	`yaml:"normalize_text"`
	OutputDir	string	`yaml:"output_dir"`
}

type Config struct {
	Logger		util.LoggerInfo		`yaml:"logger"`
	Server		ServerConfiguration	`yaml:"server"`
	Stegano		SteganoConfig		`yaml:"stegano"`
}

func DefaultConfig() *Config {
	return &Config{
		Logger: util.LoggerInfo{
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning | util.Info,
		},
		Server: ServerConfiguration{
			Address: "127.0.0.1:8575",
			Pages: map[string]string{},
		},
		Stegano: SteganoConfig{
			NormalizeText: true,
		},
	}
}

func LoadConfig( filename string ) (*Config, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal( data, cfg ); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig( filename string, cfg *Config ) error {
	data, err := yaml.Marshal( cfg )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0660 )
}
