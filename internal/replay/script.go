package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid replay script")

// Script is a recorded or hand written sequence of engine events:
//
//	name: join and leave
//	steps:
//	  - event: onJoinChannelSuccess
//	    args: [room1, 42, 100]
//	  - event: onLeaveChannel
//	    delay: 500ms
//	    args:
//	      - duration: 12
//	        userCount: 1
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one event of a script. Delay is waited before the event is
// dispatched.
type Step struct {
	Event string        `yaml:"event"`
	Args  []any         `yaml:"args"`
	Delay time.Duration `yaml:"delay"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	script, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// Parse reads and validates a script.
func Parse(r io.Reader) (*Script, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	script := &Script{}
	if err := decoder.Decode(script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks that every step names a known event and that its args
// decode into that event's parameters.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if step.Delay < 0 {
			return fmt.Errorf("%w: step %d: negative delay", ErrInvalidScript, i+1)
		}
		if _, err := Decode(step.Event, step.Args); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i+1, err)
		}
	}
	return nil
}

// Duration is the sum of all step delays.
func (s *Script) Duration() time.Duration {
	var total time.Duration
	for _, step := range s.Steps {
		total += step.Delay
	}
	return total
}

// Events returns the event names the script dispatches, in order.
func (s *Script) Events() []string {
	events := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		events[i] = step.Event
	}
	return events
}

func (s *Script) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%d step script", len(s.Steps))
}
