package amlpack

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Package AML exports as install items"
	MsgExportShort  = "Classify an AML document and write it as an install package"
	MsgDiffShort    = "Compare two exports item by item"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgExportTitle   = "Exported to %s"
	MsgDryRunTitle   = "Dry run: would export to %s"
	MsgVersionFormat = "amlpack version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrNoManifest  = "export.manifest is empty, cannot read %s as an export directory"
	MsgErrEncodeJSON  = "failed to encode diff as JSON"
	MsgErrFatalFormat = "Error: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default ./amlpack.toml when present)"
	MsgFlagOutput  = "Output directory (default: the input name without extension)"
	MsgFlagDryRun  = "Plan the export without writing anything"
	MsgFlagJSON    = "Print the changes as JSON"
	MsgFlagAll     = "List unchanged items too"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/diff-long.txt
	msgDiffLongRaw string
	MsgDiffLong    = strings.TrimSpace(msgDiffLongRaw)

	//go:embed msgs/diff-example.txt
	msgDiffExampleRaw string
	MsgDiffExample    = strings.TrimRight(msgDiffExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
