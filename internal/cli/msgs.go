package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename files in bulk with regular expressions"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "List help topics or show one"

	// Flag descriptions
	MsgFlagGlobal             = "Replace every match of a pattern instead of only the first"
	MsgFlagDryRun             = "Do everything but the actual renaming (implies -v)"
	MsgFlagVerbose            = "Print each rename; repeat to raise the log level (-vv INFO, -vvv DEBUG)"
	MsgFlagForce              = "Overwrite existing files without asking"
	MsgFlagInteractive        = "Ask before overwriting existing files"
	MsgFlagIgnoreInvalidFiles = "Skip paths that are not regular files instead of failing"
	MsgFlagRegexp             = "Additional REGEX=REPLACEMENT pattern, applied in order after PATTERN"
	MsgFlagPrefixIncrement    = "Prepend a counter, e.g. 001 counts 001, 002, ..."
	MsgFlagSuffixIncrement    = "Insert a counter before the extension, e.g. 1 counts 1, 2, ..."
	MsgFlagConfig             = "Config file (default $XDG_CONFIG_HOME/renamer/config.toml)"
	MsgFlagFormat             = "Output format: auto, term, text or json"
	MsgFlagDefaults           = "Print the commented default configuration instead"

	// Output
	MsgVersionFormat = "renamer version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgConfigNoFile  = "# no config file found, showing defaults and environment\n"

	// Error messages
	MsgErrArgs   = "requires a PATTERN and at least one FILE"
	MsgErrFormat = "invalid output format %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
