// Package config loads jtail settings.
//
// # Overview
//
// jtail runs without any configuration. A TOML file is read only when the
// caller names one explicitly (the -config flag); nothing is looked up in
// the home directory and nothing is ever written back.
//
// # TOML Format
//
//	buffer_limit = 1024        # records kept for repaint and key listing
//	max_line_bytes = 1048576   # longest accepted input line
//	show_hints = true          # draw the key hint line at startup
//	log_file = "~/jtail.log"   # debug log while the terminal is in use
//
// Every field is optional. Missing fields keep their defaults; present
// fields are validated, so buffer_limit = 0 is an error rather than a
// silent fallback. Tilde expansion is applied to the config path and to
// log_file.
//
// # Error Handling
//
// Load returns wrapped errors for open, read and parse failures
// ("open config: ...", "parse config: ...") and "invalid config: ..." for
// out-of-range values.
package config
