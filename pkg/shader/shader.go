// Package shader splits single-file shader sources into vertex and fragment
// programs.
//
// A source file holds both stages, each section introduced by a directive
// line:
//
//	#shader vertex
//	in vec2 position;
//	...
//	#shader fragment
//	out vec4 color;
//	...
//
// Lines before the first directive are dropped. Every produced stage starts
// with the [Version] pragma line.
package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const directive = "#shader"

var (
	ErrSourceUnreadable = errors.New("shader source unreadable")
	ErrUnknownDirective = errors.New("unknown shader type")
)

// Stage is the section of a source file currently being accumulated.
type Stage int

const (
	StageNone Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "none"
	}
}

// Unit is a compilable source string for one stage.
type Unit struct {
	Source string
	Stage  Stage
}

type ProgramSource struct {
	Path     string
	Vertex   Unit
	Fragment Unit
}

// DirectiveError reports a #shader line naming neither stage.
type DirectiveError struct {
	Path string
	Line int
	Text string
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, ErrUnknownDirective, e.Text)
}

func (e *DirectiveError) Unwrap() error {
	return ErrUnknownDirective
}

// Load reads the file at path and splits it.
func Load(path string) (ProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()
	return Parse(path, f)
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys fs.FS, path string) (ProgramSource, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse splits the source read from r. The path is only recorded in the
// result and in errors.
func Parse(path string, r io.Reader) (ProgramSource, error) {
	var vertex, fragment strings.Builder
	vertex.WriteString(Version + "\n")
	fragment.WriteString(Version + "\n")

	stage := StageNone
	br := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return ProgramSource{}, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
		}
		// nothing follows the last newline
		if raw == "" {
			break
		}
		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		if rest, ok := strings.CutPrefix(line, directive); ok {
			switch {
			case strings.Contains(rest, "vertex"):
				stage = StageVertex
			case strings.Contains(rest, "fragment"):
				stage = StageFragment
			default:
				return ProgramSource{}, &DirectiveError{Path: path, Line: lineNo, Text: line}
			}
		} else {
			switch stage {
			case StageVertex:
				vertex.WriteString(line)
				vertex.WriteByte('\n')
			case StageFragment:
				fragment.WriteString(line)
				fragment.WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
	}

	return ProgramSource{
		Path:     path,
		Vertex:   Unit{Source: vertex.String(), Stage: StageVertex},
		Fragment: Unit{Source: fragment.String(), Stage: StageFragment},
	}, nil
}
