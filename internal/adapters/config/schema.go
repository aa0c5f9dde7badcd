package config

// Renderfile represents the structure of a render configuration file.
type Renderfile struct {
	Dimensions   DimensionsDTO    `yaml:"dimensions"`
	Area         AreaDTO          `yaml:"area"`
	Layers       []LayerDTO       `yaml:"layers"`
	Colorization *ColorizationDTO `yaml:"colorization"`
	Population   PopulationDTO    `yaml:"population"`
}

// DimensionsDTO is the pixel grid of the render.
type DimensionsDTO struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// AreaDTO is the visible region as [min, max] pairs.
type AreaDTO struct {
	X [2]float64 `yaml:"x"`
	Y [2]float64 `yaml:"y"`
}

// LayerDTO represents a histogram layer definition.
type LayerDTO struct {
	Iterations int      `yaml:"iterations"`
	Color      ColorDTO `yaml:"color"`
}

// ColorizationDTO holds the optional brightness curve parameters.
type ColorizationDTO struct {
	Exponent  *float64 `yaml:"exponent"`
	Threshold *float64 `yaml:"threshold"`
}

// PopulationDTO holds the optional population pass settings.
type PopulationDTO struct {
	SkipInterior bool `yaml:"skip_interior"`
}
