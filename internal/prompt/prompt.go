package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirmer answers yes/no questions posed during row processing. Confirm
// blocks until an answer is available; there is no timeout.
type Confirmer interface {
	Confirm(message string, defaultAnswer bool) (bool, error)
}

const (
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// Terminal asks questions on an output stream and reads one answer line per
// question from an input stream. An empty answer selects the default;
// unrecognized input re-asks.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// NewTerminal wires a terminal confirmer to the given streams. The answer
// hint is colorized only when the input stream is an interactive terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	color := false
	if file, ok := in.(*os.File); ok {
		color = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		color: color,
	}
}

func (t *Terminal) Confirm(message string, defaultAnswer bool) (bool, error) {
	hint := "[y/N]"
	if defaultAnswer {
		hint = "[Y/n]"
	}
	if t.color {
		hint = ansiCyan + hint + ansiReset
	}

	for {
		if _, err := fmt.Fprintf(t.out, "%s %s ", message, hint); err != nil {
			return false, fmt.Errorf("write confirmation prompt: %w", err)
		}

		line, err := t.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "":
			if err == nil {
				return defaultAnswer, nil
			}
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, errors.New("confirmation input ended before an answer was given")
			}
			return false, fmt.Errorf("read confirmation answer: %w", err)
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}

// AssumeDefault answers every question with its default without blocking.
type AssumeDefault struct{}

func (AssumeDefault) Confirm(_ string, defaultAnswer bool) (bool, error) {
	return defaultAnswer, nil
}

// Scripted replays a fixed answer sequence and records every message it was
// asked. Running out of answers is an error so tests catch unexpected
// prompts.
type Scripted struct {
	Answers []bool
	Asked   []string
}

func (s *Scripted) Confirm(message string, _ bool) (bool, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return false, fmt.Errorf("unexpected confirmation: %s", message)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
