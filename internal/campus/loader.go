package campus

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadGraph reads a campus location table from a YAML file and layers it
// over the built-in defaults. File entries replace same-named defaults.
//
// Expected shape:
//
//	locations:
//	  Music Department Hall:
//	    zone: Arts
//	    floor: 1
//	    elevator: true
//	    ramp: true
//	    walk_from:
//	      Main Gate: 8
func LoadGraph(path string) (*Graph, error) {
	if path == "" {
		return DefaultGraph(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading campus graph %s: %w", path, err)
	}

	var loaded map[string]Location
	if err := k.UnmarshalWithConf("locations", &loaded, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: false}); err != nil {
		return nil, fmt.Errorf("parsing campus graph %s: %w", path, err)
	}

	merged := DefaultGraph().locations
	for name, loc := range loaded {
		merged[name] = loc
	}
	return NewGraph(merged), nil
}
