package client

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// Mode selects what the client does.
type Mode int

const (
	// ModeTUI starts the interactive task list.
	ModeTUI Mode = iota
	// ModeList prints the user's tasks as JSON.
	ModeList
	// ModeCreate creates one task and prints whether it was stored.
	ModeCreate
	// ModeComplete marks one task completed and prints whether it changed.
	ModeComplete
)

var ErrConflictingModes = errors.New("only one of -list, -create and -complete may be given")

// Command is a parsed client invocation.
type Command struct {
	Mode Mode

	// Status filters ModeList.
	Status models.TaskStatus

	// TaskType and CipherID describe the task of ModeCreate.
	TaskType models.TaskType
	CipherID string

	// TaskID is the task of ModeComplete.
	TaskID string
}

// ParseCommand reads the client's own flags from args. Configuration flags
// in the same args are skipped.
//
//	-list [-status pending|completed]
//	-create <type> [-cipher <id>]
//	-complete <task id>
func ParseCommand(args []string) (Command, error) {
	var (
		list     bool
		status   string
		create   string
		cipher   string
		complete string
	)

	fs := flag.NewFlagSet("go-vault-tasks-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&list, "list", false, "Print tasks as JSON and exit")
	fs.StringVar(&status, "status", "", "Status filter for -list")
	fs.StringVar(&create, "create", "", "Create a task of the given type")
	fs.StringVar(&cipher, "cipher", "", "Vault item of the created task")
	fs.StringVar(&complete, "complete", "", "Mark the task with the given id completed")

	if err := fs.Parse(config.KnownFlags(fs, args)); err != nil {
		return Command{}, fmt.Errorf("parse client flags: %w", err)
	}

	cmd := Command{Mode: ModeTUI}
	modes := 0
	if list {
		cmd.Mode = ModeList
		cmd.Status = models.TaskStatus(status)
		modes++
	}
	if create != "" {
		cmd.Mode = ModeCreate
		cmd.TaskType = models.TaskType(create)
		cmd.CipherID = cipher
		modes++
	}
	if complete != "" {
		cmd.Mode = ModeComplete
		cmd.TaskID = complete
		modes++
	}

	if modes > 1 {
		return Command{}, ErrConflictingModes
	}

	return cmd, nil
}
