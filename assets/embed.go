// Package assets bundles the configuration and prompt templates shipped
// with gitie. The templates seed the user-scope configuration on first run.
package assets

import (
	"embed"
	"io/fs"
)

// ConfigTemplateName is the bundled configuration template.
const ConfigTemplateName = "config.example.toml"

// PromptTemplateName is the bundled commit-message system prompt.
const PromptTemplateName = "commit-prompt"

//go:embed config.example.toml commit-prompt
var assetsFS embed.FS

// GetAsset returns the raw contents of a bundled asset.
func GetAsset(name string) ([]byte, error) {
	return assetsFS.ReadFile(name)
}

// GetAssetsFS exposes the embedded filesystem.
func GetAssetsFS() fs.FS {
	return assetsFS
}

// AssetExists reports whether a bundled asset with the given name exists.
func AssetExists(name string) bool {
	_, err := assetsFS.ReadFile(name)
	return err == nil
}
