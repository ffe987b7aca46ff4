// Package schemas embeds the JSON Schemas for operator-supplied input files.
package schemas

import _ "embed"

// Profile is the schema for JSON target profiles.
//
//go:embed profile.schema.json
var Profile string

// Config is the schema for the JSON run configuration file.
//
//go:embed config.schema.json
var Config string
