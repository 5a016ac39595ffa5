package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ParseError reports a malformed or unreadable input file. No partial
// data is produced alongside it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing midi file %v: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadMidiFile reads and parses a standard midi file from disk.
func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		var blank smf.SMF
		return &blank, &ParseError{Path: filepath, Err: err}
	}
	return ReadMidiBytes(dat, filepath)
}

// ReadMidiBytes parses standard midi file content already in memory;
// path only labels errors.
func ReadMidiBytes(dat []byte, path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf reader can panic on corrupt input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = &ParseError{Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, &ParseError{Path: path, Err: err}
	}

	return res, nil
}
