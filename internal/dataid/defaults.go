package dataid

import "dataid/value"

// CalibrationOrder lists calibrations from most to least preferred.
var CalibrationOrder = []string{"reflectance", "brightness_temperature", "radiance", "counts"}

// DefaultIDKeys is the schema of data products read from files.
var DefaultIDKeys = MustSchema(
	Field{Name: "name", Required: true},
	Field{Name: "wavelength", Type: WavelengthType},
	Field{Name: "resolution", Transitive: true},
	Field{Name: "calibration", Enum: CalibrationOrder},
	Field{Name: "modifiers", Type: ModifiersType, Default: value.ModifierTuple{}},
)

// DefaultCoordKeys is the schema of coordinate products.
var DefaultCoordKeys = MustSchema(
	Field{Name: "name", Required: true},
	Field{Name: "resolution", Transitive: true},
)

// MinimalKeys is the schema for products with little metadata, such as composites.
var MinimalKeys = MustSchema(
	Field{Name: "name", Required: true},
	Field{Name: "resolution", Transitive: true},
)
