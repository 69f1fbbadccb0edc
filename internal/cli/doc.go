// Package cli implements the llamactl command-line interface.
//
// The package is organized around Cobra commands, one file per command, with
// each command delegating to the internal packages for the actual work:
//
//   - Command definitions (cobra.Command instances)
//   - Orchestration (load preferences, detect hardware, call ollama)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "llamactl" with subcommands for different operations:
//
//	llamactl              - Interactive menu (on a TTY)
//	llamactl hardware     - Show detected CPU/RAM/GPU and capability tier
//	llamactl recommend    - Models that fit the detected hardware
//	llamactl models       - List installed models
//	llamactl pull/rm      - Install or remove a model
//	llamactl use/run      - Switch the active model, run it interactively
//	llamactl install      - Install or update the ollama binary
//	llamactl doctor       - Diagnose setup issues
//	llamactl init         - Create the preferences file
//	llamactl history      - Show the usage log
//	llamactl backup       - Manage preferences backups
//	llamactl catalog      - Show the model catalog
//
// # Preferences
//
// The root pre-run loads the JSON preferences file (default
// ~/.config/llamactl/config.json, overridable with --config), applies the
// color mode, and regenerates the on-disk model catalog. Commands that change
// preferences rewrite the whole file through a temp-file rename.
//
// # Flag Handling
//
// Global flags (--config, --json, --no-color, --verbose) are defined on the
// root command and available to all subcommands. Command-specific flags are
// defined on individual commands.
//
// All --json output uses the JSONEnvelope structure with machine-readable
// error codes so automation can branch on specific failures.
package cli
