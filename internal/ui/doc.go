// Package ui provides terminal UI components for llamactl's CLI output.
//
// The package includes a spinner, styled tables, a branded header, and an
// interactive model picker, using the Lip Gloss library for consistent
// terminal styling across all commands.
//
// # Components Overview
//
//	Spinner           - Animated status indicator for server pings and checks
//	RenderModelTable  - Model listings with the active model marked
//	RenderDoctorTable - Diagnostic results grouped by category
//	RenderHeader      - Branded header for the interactive menu
//	PickModel         - Interactive model selection using Bubble Tea
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and tight-fit notes
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - In-progress indicators
//
// Use SetColorMode or DisableColors to honor the ui.color preference and the
// --no-color flag.
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Checking ollama server")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// The spinner handles line clearing and timing display on its own.
package ui
