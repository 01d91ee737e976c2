// Package config loads identifier schemas from YAML.
//
// A schema file is a mapping from field name to field record. Field order in
// the file is the field order of the schema:
//
//	name: {required: true}
//	wavelength: {type: wavelength}
//	resolution: {transitive: true}
//	calibration: {enum: [reflectance, brightness_temperature, radiance, counts]}
//	modifiers: {type: modifiers, default: []}
//
// Record keys:
//   - required: the field must resolve to a value
//   - default: value used when attributes lack the field
//   - transitive: the field carries over to dependency queries
//   - type: a registered converter name (see dataid.TypeNames)
//   - enum: closed list of names, highest priority first
//
// A field may have type or enum, not both. Validate reports every problem
// of a file as diagnostics; Schema refuses invalid files.
package config
