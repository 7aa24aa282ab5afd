package launcher

// Version is the current version of the viberun launcher shim
const Version = "0.1.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version of the shim
	Version string
	// BinaryName is the vendored binary this shim launches
	BinaryName string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:    Version,
		BinaryName: DefaultBinaryName,
	}
}
