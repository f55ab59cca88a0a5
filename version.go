package ecospold

// SchemaVersion identifies an EcoSpold schema generation.
type SchemaVersion string

// Supported EcoSpold schema versions.
const (
	// V1 is EcoSpold version 1 (EcoSpold01, used by ecoinvent 1.x/2.x).
	V1 SchemaVersion = "V1"
	// V2 is EcoSpold version 2 (EcoSpold02, used by ecoinvent 3.x).
	V2 SchemaVersion = "V2"
)

// String returns the version string.
func (v SchemaVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported schema version.
func (v SchemaVersion) IsValid() bool {
	switch v {
	case V1, V2:
		return true
	default:
		return false
	}
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// SchemaFile is the default XSD asset shipped with the package.
	SchemaFile string

	// Namespace is the schema's target namespace.
	Namespace string

	// RootTag is the document root element name.
	RootTag string
}

// versionConfigs maps schema versions to their configurations.
var versionConfigs = map[SchemaVersion]versionConfig{
	V1: {
		SchemaFile: "schemas/v1/EcoSpold01.xsd",
		Namespace:  "http://www.EcoInvent.org/EcoSpold01",
		RootTag:    "ecoSpold",
	},
	V2: {
		SchemaFile: "schemas/v2/EcoSpold02.xsd",
		Namespace:  "http://www.EcoInvent.org/EcoSpold02",
		RootTag:    "ecoSpold",
	},
}

// SchemaFile returns the path of the default embedded XSD for this version.
func (v SchemaVersion) SchemaFile() string {
	return versionConfigs[v].SchemaFile
}

// Namespace returns the schema's target namespace for this version.
func (v SchemaVersion) Namespace() string {
	return versionConfigs[v].Namespace
}

// RootTag returns the document root element name for this version.
func (v SchemaVersion) RootTag() string {
	return versionConfigs[v].RootTag
}
