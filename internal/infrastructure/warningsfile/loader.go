// Package warningsfile lee el catálogo de advertencias de viaje por país desde YAML.
package warningsfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File forma del archivo:
//
//	warnings:
//	  FR:
//	    - "Strikes expected on public transport."
type File struct {
	Warnings map[string][]string `yaml:"warnings" validate:"required,dive,keys,len=2,alpha,endkeys,dive,required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load lee y valida el archivo en path.
func Load(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open warnings file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodifica y valida; los códigos de país se normalizan a mayúsculas.
func Parse(r io.Reader) (map[string][]string, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse warnings file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("warnings validation failed: %w", err)
	}
	out := make(map[string][]string, len(file.Warnings))
	for cc, texts := range file.Warnings {
		key := strings.ToUpper(cc)
		out[key] = append(out[key], texts...)
	}
	return out, nil
}
