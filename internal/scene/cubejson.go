package scene

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/netkeep80/isocubic-sub006/internal/cube"
)

//go:embed cubeconfig.schema.json
var cubeSchemaJSON []byte

const cubeSchemaName = "cubeconfig.schema.json"

var cubeSchema = mustCompileCubeSchema()

func mustCompileCubeSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(cubeSchemaName, bytes.NewReader(cubeSchemaJSON)); err != nil {
		panic(err)
	}
	s, err := c.Compile(cubeSchemaName)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseCubeJSON validates an authoring-layer cube description against the
// embedded schema and decodes it. The schema enforces the one fatal
// contract — base.color must be present — plus basic shape; enum-valued
// strings stay unconstrained because unrecognized values resolve to
// documented defaults downstream.
func ParseCubeJSON(data []byte) (cube.Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return cube.Config{}, fmt.Errorf("cube config: %w", err)
	}
	if err := cubeSchema.Validate(doc); err != nil {
		return cube.Config{}, fmt.Errorf("cube config: %w", err)
	}
	var cfg cube.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cube.Config{}, fmt.Errorf("cube config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// LoadCubeJSON reads and parses a cube description file.
func LoadCubeJSON(path string) (cube.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cube.Config{}, err
	}
	return ParseCubeJSON(b)
}
