package shell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/guessgame/internal/game"
)

// Event is one JSON line written by RunJSON.
type Event struct {
	Type        string       `json:"type"` // instructions | ready | started | notice | feedback | error
	Message     string       `json:"message,omitempty"`
	Session     string       `json:"session,omitempty"`
	Outcome     game.Outcome `json:"outcome,omitempty"`
	Attempts    uint8        `json:"attempts,omitempty"`
	RoundOver   bool         `json:"roundOver,omitempty"`
	Min         *int         `json:"min,omitempty"`
	Max         *int         `json:"max,omitempty"`
	MaxAttempts uint8        `json:"maxAttempts,omitempty"`
}

// Request is one JSON line read by RunJSON. Plain text lines and bare JSON
// strings are accepted too and behave like the text front end.
type Request struct {
	Action string          `json:"action"` // start | guess | quit
	Value  json.RawMessage `json:"value"`  // string or number
}

type jsonView struct {
	enc  *json.Encoder
	opts Options
}

// RunJSON plays over JSON lines, for driving the game from another program.
func (s *Shell) RunJSON(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.run(ctx, in, parseJSON, &jsonView{enc: json.NewEncoder(out), opts: s.opts})
}

// parseJSON decodes one request line. Objects are handled here and never
// reach parseText, so a malformed request cannot be submitted as a guess.
func parseJSON(line string) command {
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, "{") {
		var req Request
		if err := json.Unmarshal([]byte(t), &req); err != nil {
			return invalid("%v", err)
		}
		switch strings.ToLower(req.Action) {
		case "start":
			return command{act: actStart}
		case "quit":
			return command{act: actQuit}
		case "guess":
			v, err := guessValue(req.Value)
			if err != nil {
				return invalid("%v", err)
			}
			return command{act: actGuess, value: v}
		case "":
			return invalid("missing action")
		default:
			return invalid("unknown action %q", req.Action)
		}
	}
	var str string
	if err := json.Unmarshal([]byte(t), &str); err == nil {
		t = str
	}
	return parseText(t)
}

// guessValue accepts a JSON string or number and returns it as guess text.
// Numbers keep their literal form so "12.5" still reaches the engine as such.
func guessValue(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("guess needs a value")
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("guess value must be a string or a number, got %s", raw)
}

func (v *jsonView) instructions(text string) error {
	lo, hi := v.opts.Min, v.opts.Max
	return v.enc.Encode(Event{
		Type:        "instructions",
		Message:     text,
		Min:         &lo,
		Max:         &hi,
		MaxAttempts: v.opts.MaxAttempts,
	})
}

func (v *jsonView) prompt(st Status) error {
	if st != StatusReady {
		return nil
	}
	return v.enc.Encode(Event{Type: "ready"})
}

func (v *jsonView) started(id string) error {
	return v.enc.Encode(Event{Type: "started", Session: id})
}

func (v *jsonView) feedback(fb Feedback) error {
	return v.enc.Encode(Event{
		Type:      "feedback",
		Message:   fb.Message,
		Outcome:   fb.Outcome,
		Attempts:  fb.Attempts,
		RoundOver: fb.RoundOver,
	})
}

func (v *jsonView) failure(err error) error {
	return v.enc.Encode(Event{Type: "error", Message: err.Error()})
}

func (v *jsonView) notice(text string) error {
	return v.enc.Encode(Event{Type: "notice", Message: text})
}
