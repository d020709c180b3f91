// Package config provides YAML-based configuration for the exporter.
//
// All settings have working defaults, so a config file is optional. The
// conference zone is expressed as a single UTC offset value to keep the
// fixed-offset simplification explicit and swappable.
package config
