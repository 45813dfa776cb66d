// Package config loads the koatty-graphql config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/Koatty/koatty-graphql/typegen"
)

// DefaultFilenames are the config file names probed by FindConfigFile, in
// order.
var DefaultFilenames = []string{".koatty-graphql.yml", "koatty-graphql.yml", ".koatty-graphql.yaml", "koatty-graphql.yaml"}

// Config represents the config file.
type Config struct {
	SchemaFilename StringList        `yaml:"schema"`
	Generate       *GenerateConfig   `yaml:"generate,omitempty"`
	Scalars        map[string]string `yaml:"scalars,omitempty"`
}

// GenerateConfig holds the declaration style options.
type GenerateConfig struct {
	OutputDir        string `yaml:"outputDir,omitempty"`
	Prefix           string `yaml:"prefix,omitempty"`
	Suffix           string `yaml:"suffix,omitempty"`
	UseEnumType      bool   `yaml:"useEnumType,omitempty"`
	UseInterfaceType bool   `yaml:"useInterfaceType,omitempty"`
	StrictNullChecks bool   `yaml:"strictNullChecks,omitempty"`
}

// Options maps the config onto renderer options. A nil receiver yields the
// defaults.
func (c *GenerateConfig) Options() *typegen.Options {
	if c == nil {
		return &typegen.Options{}
	}

	return &typegen.Options{
		Prefix:           c.Prefix,
		Suffix:           c.Suffix,
		UseEnumType:      c.UseEnumType,
		UseInterfaceType: c.UseInterfaceType,
		StrictNullChecks: c.StrictNullChecks,
		OutputDir:        c.OutputDir,
	}
}

// StringList is a simple array of strings
type StringList []string

// Has checks if the strings array has a give value
func (a StringList) Has(file string) bool {
	for _, existing := range a {
		if existing == file {
			return true
		}
	}

	return false
}

// Load reads and strict-parses the config file. Environment variables in the
// file are expanded, schema globs are resolved to filenames.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	confContent := []byte(os.ExpandEnv(string(b)))
	if err := yaml.UnmarshalWithOptions(confContent, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if len(cfg.SchemaFilename) == 0 {
		return nil, errors.New("'schema' not specified. Use schema to point at your SDL files")
	}

	cfg.SchemaFilename, err = schemaFilenames(cfg.SchemaFilename)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir finds the config file in dir (or the closest parent) and loads
// it.
func LoadFromDir(dir string) (*Config, error) {
	cfgFile, err := FindConfigFile(dir, DefaultFilenames)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return Load(cfgFile)
}
