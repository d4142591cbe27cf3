package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AppConfig carries the data-file locations and the membership collaborator
// endpoint. All fields have working defaults so config.yml is optional.
type AppConfig struct {
	SourcePath        string `yaml:"source_path" validate:"omitempty,filepath"`
	BoundaryPath      string `yaml:"boundary_path" validate:"omitempty,filepath"`
	MembershipBaseURL string `yaml:"membership_base_url" validate:"omitempty,url"`
}

// LoadAppConfig reads and validates config.yml when present; a missing file
// yields defaults.
func LoadAppConfig() (AppConfig, error) {
	cfg := AppConfig{
		BoundaryPath: "data/sp_municipios.geojson",
	}

	data, err := os.ReadFile("config.yml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
