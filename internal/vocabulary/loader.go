package vocabulary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Format identifica o formato de um arquivo de vocabulário
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// File é o layout dos arquivos de vocabulário:
//
//	groups:
//	  - legacy: [kapvergunning, bomenkap]
//	    current: [kap]
type File struct {
	Groups []TermGroup `json:"groups" yaml:"groups" toml:"groups"`
}

// FormatFromPath deduz o formato pela extensão do arquivo
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", eris.Wrapf(ErrUnsupportedFormat, "arquivo %s", path)
}

// LoadFile lê e valida um arquivo de vocabulário
func LoadFile(path string, opts ...Option) (*Vocabulary, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "erro ao ler vocabulário %s", path)
	}

	v, err := Parse(data, format, opts...)
	if err != nil {
		return nil, eris.Wrapf(err, "vocabulário %s", path)
	}
	return v, nil
}

// Parse decodifica os grupos no formato indicado e constrói o vocabulário
func Parse(data []byte, format Format, opts ...Option) (*Vocabulary, error) {
	var f File

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, eris.Wrap(err, "yaml inválido")
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, eris.Wrap(err, "toml inválido")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, eris.Wrap(err, "json inválido")
		}
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "formato %q", format)
	}

	return New(f.Groups, opts...)
}
