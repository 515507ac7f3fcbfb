package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlRunConfig is the on-disk shape of a run configuration file, struct
// tags mirroring core/program.go's YAMLRoot/YAMLCoreProgram style.
type yamlRunConfig struct {
	Name      string        `yaml:"name"`
	Floorplan yamlFloorplan `yaml:"floorplan"`
	Solver    yamlSolver    `yaml:"solver"`
	Passes    []string      `yaml:"passes"`
	History   string        `yaml:"history"`
	DebugAddr string        `yaml:"debug_addr"`
}

type yamlFloorplan struct {
	CoreWidthNM     int64 `yaml:"core_width_nm"`
	CoreHeightNM    int64 `yaml:"core_height_nm"`
	MinCellWidthNM  int64 `yaml:"min_cell_width_nm"`
	MinCellHeightNM int64 `yaml:"min_cell_height_nm"`
	IOMarginLeft    int64 `yaml:"io_margin_left_nm"`
	IOMarginRight   int64 `yaml:"io_margin_right_nm"`
	IOMarginTop     int64 `yaml:"io_margin_top_nm"`
	IOMarginBottom  int64 `yaml:"io_margin_bottom_nm"`
	IO2CoreLeft     int64 `yaml:"io2core_left_nm"`
	IO2CoreRight    int64 `yaml:"io2core_right_nm"`
	IO2CoreTop      int64 `yaml:"io2core_top_nm"`
	IO2CoreBottom   int64 `yaml:"io2core_bottom_nm"`
}

type yamlSolver struct {
	NetModel     string  `yaml:"net_model"`
	MaxLevels    int     `yaml:"max_levels"`
	MinInstances int     `yaml:"min_instances"`
	Tol          float64 `yaml:"tol"`
	MaxIters     int     `yaml:"max_iters"`
}

// LoadFromYAML reads a run configuration file, the YAML-driven counterpart
// to core.LoadProgramFileFromYAML -- unlike that function, a malformed
// file here returns an error instead of panicking, since a bad config
// file is operator input, not a programming precondition.
func LoadFromYAML(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw yamlRunConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &RunConfig{
		Name: raw.Name,
		Floorplan: FloorplanConfig{
			CoreWidthNM:     raw.Floorplan.CoreWidthNM,
			CoreHeightNM:    raw.Floorplan.CoreHeightNM,
			MinCellWidthNM:  raw.Floorplan.MinCellWidthNM,
			MinCellHeightNM: raw.Floorplan.MinCellHeightNM,
			IOMarginLeft:    raw.Floorplan.IOMarginLeft,
			IOMarginRight:   raw.Floorplan.IOMarginRight,
			IOMarginTop:     raw.Floorplan.IOMarginTop,
			IOMarginBottom:  raw.Floorplan.IOMarginBottom,
			IO2CoreLeft:     raw.Floorplan.IO2CoreLeft,
			IO2CoreRight:    raw.Floorplan.IO2CoreRight,
			IO2CoreTop:      raw.Floorplan.IO2CoreTop,
			IO2CoreBottom:   raw.Floorplan.IO2CoreBottom,
		},
		Solver: SolverConfig{
			NetModel:     raw.Solver.NetModel,
			MaxLevels:    raw.Solver.MaxLevels,
			MinInstances: raw.Solver.MinInstances,
			Tol:          raw.Solver.Tol,
			MaxIters:     raw.Solver.MaxIters,
		},
		Passes:    raw.Passes,
		History:   raw.History,
		DebugAddr: raw.DebugAddr,
	}, nil
}
