// Package config loads the YAML file that drives a calculator run and
// builds its slog logger.
//
// Example file:
//
//	workers: 4
//	log: {level: info, format: text}
//	metrics: true
//	descriptors: [BCUT, SpAbs, SpMax, VR1]
//
// Omitted fields keep their Default values. An empty descriptor list
// selects every kind that has a preset.
package config
