package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"

	// Config and preset fields
	FieldPath   = "path"
	FieldFormat = "format"
	FieldPreset = "preset"
	FieldNamed  = "named"

	// URL fields
	FieldHost      = "host"
	FieldCloudName = "cloud_name"
	FieldPublicID  = "public_id"
	FieldMediaType = "media_type"
	FieldURL       = "url"
)
