package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/katalvlaran/affnet/network"
)

var (
	// ErrInvalidSource indicates a nil source, an unknown variant, or a
	// source that yields no edges.
	ErrInvalidSource = errors.New("ingest: invalid source")
	// ErrMalformedRecord indicates a record that is not exactly (person, group).
	ErrMalformedRecord = errors.New("ingest: malformed record")
)

const fieldsPerEdge = 2

// Source is the closed set of inputs accepted by Load.
type Source interface {
	isSource()
}

// RawEdgeList is a list of already-parsed [person, group] pairs.
type RawEdgeList [][]string

// SourcePath is the path of a single CSV file.
type SourcePath string

// SourcePathList is a list of CSV file paths read in order.
type SourcePathList []string

func (RawEdgeList) isSource()    {}
func (SourcePath) isSource()     {}
func (SourcePathList) isSource() {}

// Load reads every edge from src in order.
//
// Errors: ErrInvalidSource, ErrMalformedRecord, or a wrapped I/O error.
func Load(src Source) ([]network.Edge, error) {
	var (
		edges []network.Edge
		err   error
	)
	switch s := src.(type) {
	case RawEdgeList:
		edges, err = fromPairs(s)
	case SourcePath:
		edges, err = readFile(string(s))
	case SourcePathList:
		if len(s) == 0 {
			return nil, fmt.Errorf("Load: empty path list: %w", ErrInvalidSource)
		}
		for _, p := range s {
			var part []network.Edge
			if part, err = readFile(p); err != nil {
				break
			}
			edges = append(edges, part...)
		}
	default:
		return nil, fmt.Errorf("Load: unsupported source %T: %w", src, ErrInvalidSource)
	}
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("Load: no edges: %w", ErrInvalidSource)
	}

	return edges, nil
}

// Network is Load followed by network.New.
func Network(src Source, opts ...network.Option) (*network.Network, error) {
	edges, err := Load(src)
	if err != nil {
		return nil, err
	}

	return network.New(edges, opts...)
}

// Read parses "person,group" records from r. A leading UTF-8 BOM is dropped.
func Read(r io.Reader) ([]network.Edge, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var edges []network.Edge
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		e, err := toEdge(rec)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func readFile(path string) ([]network.Edge, error) {
	if path == "" {
		return nil, fmt.Errorf("readFile: empty path: %w", ErrInvalidSource)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readFile: %w", err)
	}
	defer f.Close()

	edges, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

func fromPairs(pairs RawEdgeList) ([]network.Edge, error) {
	edges := make([]network.Edge, 0, len(pairs))
	for i, p := range pairs {
		e, err := toEdge(p)
		if err != nil {
			return nil, fmt.Errorf("fromPairs: pair %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func toEdge(rec []string) (network.Edge, error) {
	if len(rec) != fieldsPerEdge {
		return network.Edge{}, fmt.Errorf("%d fields %q: %w", len(rec), rec, ErrMalformedRecord)
	}
	person, group := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
	if person == "" || group == "" {
		return network.Edge{}, fmt.Errorf("empty field in %q: %w", rec, ErrMalformedRecord)
	}

	return network.Edge{Person: person, Group: group}, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
