/*
Package gtp parses single lines of the Go Text Protocol, the
line-oriented text protocol spoken by board-game engines and their
controllers. One protocol line consists of an optional decimal id, the
“count”, followed by a command name and zero or more whitespace
separated arguments:

	3 play black D5

Parsing such a line yields a RawCommand with all three parts:

	raw, err := gtp.Parse[gtp.RawCommand]("3 play black D5")
	// raw.Count == 3, raw.HasCount == true
	// raw.Name == "play"
	// raw.Args == []string{"black", "D5"}

Most callers do not want to dispatch on bare strings. A Registry maps
the parsed line onto a caller-defined closed set of commands. Command
names are matched case-insensitively in declaration order and anything
unknown falls through to a catch-all that keeps the complete raw data:

	type engineCmd int

	const (
		cmdPlay engineCmd = iota
		cmdShowBoard
		cmdQuit
	)

	var commands = gtp.NewRegistry[engineCmd]().
		Register("Play", cmdPlay).
		Register("ShowBoard", cmdShowBoard).
		Register("Quit", cmdQuit)

	cmd, err := commands.Parse("SHOWBOARD")
	// cmd.Tag == cmdShowBoard, cmd.Unrecognized() == false

The mapping never fails. An unrecognized command is not an error of the
protocol, it just ends up in the catch-all with Raw holding the
original count, name and arguments, so no information is lost.

The standard command set of GTP version 2 is predeclared as
StdCommands.

Parsing does not execute anything and does not validate argument lists
against the commands. That is the business of the engine behind the
protocol. Each parse works on one line, is independent of any other
parse and shares no state, so lines may be parsed concurrently without
synchronization.
*/
package gtp
