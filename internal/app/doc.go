// Package app provides the orchestration layer for the jtail viewer.
//
// # Overview
//
// Run is the composition root. It loads configuration, opens the input,
// prepares the terminal and runs the event loop:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        optional TOML settings
//	       ├─────> logtail.Open()       stdin or a file
//	       ├─────> /dev/tty raw mode    keystrokes without echo
//	       └─────> serve()
//	                ├─ bubbletea program  owns stream.State + ui.Console
//	                ├─ pump               Source.Lines() → LineMsg
//	                └─ watchResize        SIGWINCH → WindowSizeMsg
//
// Standard input usually carries the log stream, so keystrokes are read from
// /dev/tty instead. The program runs without a bubbletea renderer; the
// console draws records itself with cursor positioning, and the terminal is
// put into raw mode here rather than by bubbletea.
//
// # Concurrency
//
// The pump and the resize watcher only Send messages. Every mutation of the
// stream state happens inside the program's Update, so records and
// keystrokes are applied one at a time in the order they arrive. The three
// goroutines share an errgroup; leaving the program cancels the others.
//
// # Logging
//
// While the terminal is in use, log output is discarded, or written to
// log_file through tea.LogToFile when one is configured.
//
// # Error Handling
//
// Configuration, input and terminal setup errors are returned from Run
// wrapped with context. After startup the only fatal error is a failed
// terminal write, reported by the console and returned when the program
// exits. End of input is not an error; the viewer stays up until ctrl+c.
package app
