// Package constants centralizes cross-cutting literal values.
package constants

const (
	// ConfigName is the config file name without extension.
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix prefixes every environment override, e.g. CLINICA_SERVER_PORT.
	EnvPrefix = "CLINICA"

	// EventSubjectPrefix roots every NATS subject this service publishes.
	EventSubjectPrefix = "clinica"
)
