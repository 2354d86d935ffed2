package gtp

import "fmt"

// StdCommand tags the commands of GTP version 2.
type StdCommand int

const (
	ProtocolVersion StdCommand = iota
	Name
	Version
	KnownCommand
	ListCommands
	Quit
	Boardsize
	ClearBoard
	Komi
	FixedHandicap
	PlaceFreeHandicap
	SetFreeHandicap
	Play
	Genmove
	Undo
	TimeSettings
	TimeLeft
	FinalScore
	FinalStatusList
	Loadsgf
	RegGenmove
	Showboard
)

var stdNames = []string{
	ProtocolVersion:   "protocol_version",
	Name:              "name",
	Version:           "version",
	KnownCommand:      "known_command",
	ListCommands:      "list_commands",
	Quit:              "quit",
	Boardsize:         "boardsize",
	ClearBoard:        "clear_board",
	Komi:              "komi",
	FixedHandicap:     "fixed_handicap",
	PlaceFreeHandicap: "place_free_handicap",
	SetFreeHandicap:   "set_free_handicap",
	Play:              "play",
	Genmove:           "genmove",
	Undo:              "undo",
	TimeSettings:      "time_settings",
	TimeLeft:          "time_left",
	FinalScore:        "final_score",
	FinalStatusList:   "final_status_list",
	Loadsgf:           "loadsgf",
	RegGenmove:        "reg_genmove",
	Showboard:         "showboard",
}

// String returns the protocol name of c.
func (c StdCommand) String() string {
	if c < 0 || int(c) >= len(stdNames) {
		return fmt.Sprintf("StdCommand(%d)", int(c))
	}
	return stdNames[c]
}

// StdCommands is the registry of the GTP version 2 standard command
// set.
var StdCommands = newStdCommands()

func newStdCommands() *Registry[StdCommand] {
	res := NewRegistry[StdCommand]()
	for tag, name := range stdNames {
		res.Register(name, StdCommand(tag))
	}
	return res
}
