package pyprints

// Version is the current version of the go-pyprints library
const Version = "1.0.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// Tool is the name of the bundled executable driven by this library
	Tool string
	// Commands lists the tool commands the library invokes
	Commands []string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:  Version,
		Tool:     ToolName,
		Commands: []string{cmdList, cmdSetDefault, cmdPrint},
	}
}
