package assets

// Built-in asset names.
const (
	// DefaultStyleName is the base stylesheet template.
	DefaultStyleName = "base"

	// DocumentTemplateName is the HTML document template.
	DocumentTemplateName = "document"
)

// AssetLoader defines the contract for loading stylesheet and document templates.
type AssetLoader interface {
	// LoadStyle loads a stylesheet template by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
