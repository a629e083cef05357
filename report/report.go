package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/affnet/network"
)

// DefaultReachSteps is the number of k-step reach lines in a report.
const DefaultReachSteps = 4

// Scope values for Summary.Scope.
const (
	ScopeWhole   = "whole"
	ScopeLargest = "largest"
)

var (
	// ErrNilNetwork indicates Build was called with a nil network.
	ErrNilNetwork = errors.New("report: network is nil")
	// ErrInvalidSteps indicates fewer than one reach step was requested.
	ErrInvalidSteps = errors.New("report: reach steps must be >= 1")
	// ErrNilSummary indicates a writer was called with a nil summary.
	ErrNilSummary = errors.New("report: summary is nil")
)

// TwoMode is the person-to-group part of a report.
type TwoMode struct {
	Persons          int     `yaml:"persons"`
	Groups           int     `yaml:"groups"`
	PersonProportion float64 `yaml:"personProportion"`
	GroupProportion  float64 `yaml:"groupProportion"`
	Betweenness      float64 `yaml:"betweenness"`
}

// OneMode is the person-to-person part of a report. Persons and Groups are
// set only for the largest-component scope.
type OneMode struct {
	Persons                 int       `yaml:"persons,omitempty"`
	Groups                  int       `yaml:"groups,omitempty"`
	MeanCoEnrollments       float64   `yaml:"meanCoEnrollments"`
	MeanUniqueCoEnrollments float64   `yaml:"meanUniqueCoEnrollments"`
	UniqueEdges             int       `yaml:"uniqueEdges"`
	Density                 float64   `yaml:"density"`
	Clustering              float64   `yaml:"clustering"`
	CharPathLength          float64   `yaml:"charPathLength"`
	Diameter                int       `yaml:"diameter"`
	Reach                   []float64 `yaml:"reach"`
}

// Summary is everything a report prints.
type Summary struct {
	PersonToGroup  TwoMode `yaml:"personToGroup"`
	Scope          string  `yaml:"scope"`
	PersonToPerson OneMode `yaml:"personToPerson"`
}

// Build computes a Summary for net with reach steps 1..steps.
//
// Errors: ErrNilNetwork, ErrInvalidSteps, or an error from materializing the
// largest component.
func Build(net *network.Network, steps int) (*Summary, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if steps < 1 {
		return nil, fmt.Errorf("Build(steps=%d): %w", steps, ErrInvalidSteps)
	}

	pp, gp := net.LargestProportion()
	s := &Summary{
		PersonToGroup: TwoMode{
			Persons:          net.PersonCount(),
			Groups:           net.GroupCount(),
			PersonProportion: pp,
			GroupProportion:  gp,
			Betweenness:      net.BetweennessCentrality(),
		},
		Scope: ScopeWhole,
	}

	target := net
	if !net.IsConnected() {
		sub, err := net.LargestComponentToNetwork()
		if err != nil {
			return nil, fmt.Errorf("Build: largest component: %w", err)
		}
		target = sub
		s.Scope = ScopeLargest
		s.PersonToPerson.Persons = sub.PersonCount()
		s.PersonToPerson.Groups = sub.GroupCount()
	}

	paths, err := target.PathData(steps)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	s.PersonToPerson.MeanCoEnrollments = target.MeanCoEnrollments()
	s.PersonToPerson.MeanUniqueCoEnrollments = target.MeanUniqueCoEnrollments()
	s.PersonToPerson.UniqueEdges = target.UniqueEdges()
	s.PersonToPerson.Density = target.NetworkDensity()
	s.PersonToPerson.Clustering = target.AverageClusterCoeff()
	s.PersonToPerson.CharPathLength = paths.CharPathLength
	s.PersonToPerson.Diameter = paths.Diameter
	s.PersonToPerson.Reach = paths.Reach

	return s, nil
}

const (
	labelWidth = 29
	rule       = "----------------------------------------"
)

// textWriter accumulates the layout; every line is a label padded to
// labelWidth followed by a 10-wide value.
type textWriter struct {
	b strings.Builder
}

func (t *textWriter) heading(title string) {
	t.b.WriteString(title + "\n" + rule + "\n")
}

func (t *textWriter) intLine(label string, v int) {
	fmt.Fprintf(&t.b, "%-*s%10d\n", labelWidth, label, v)
}

func (t *textWriter) floatLine(label string, v float64) {
	fmt.Fprintf(&t.b, "%-*s%10.5f\n", labelWidth, label, v)
}

// WriteText renders s in the fixed-width console layout.
func WriteText(w io.Writer, s *Summary) error {
	if s == nil {
		return ErrNilSummary
	}
	var t textWriter
	t.b.WriteString("\n")
	t.heading("Person-to-Group Data:")
	t.intLine("Persons:", s.PersonToGroup.Persons)
	t.intLine("Groups:", s.PersonToGroup.Groups)
	t.floatLine("Proportion of persons:", s.PersonToGroup.PersonProportion)
	t.floatLine("Proportion of groups:", s.PersonToGroup.GroupProportion)
	t.floatLine("Betweenness Centrality:", s.PersonToGroup.Betweenness)
	t.b.WriteString("\n")

	p := s.PersonToPerson
	if s.Scope == ScopeLargest {
		t.heading("Person-to-Person Largest Component Data:")
		t.intLine("Persons:", p.Persons)
		t.intLine("Groups:", p.Groups)
	} else {
		t.heading("Person-to-Person Whole Network Data:")
	}
	t.floatLine("Mean co-enrollments:", p.MeanCoEnrollments)
	t.floatLine("Mean unique co-enrollments:", p.MeanUniqueCoEnrollments)
	t.intLine("Unique edges (links):", p.UniqueEdges)
	t.floatLine("Network density:", p.Density)
	t.floatLine("Clustering coefficient:", p.Clustering)
	t.floatLine("Characteristic path length:", p.CharPathLength)
	t.intLine("Network diameter:", p.Diameter)
	for x := 1; x < len(p.Reach); x++ {
		t.floatLine(fmt.Sprintf("%d-step reach:", x), p.Reach[x])
	}
	t.b.WriteString("\n")

	_, err := io.WriteString(w, t.b.String())
	return err
}

// WriteYAML renders s as a YAML document.
func WriteYAML(w io.Writer, s *Summary) error {
	if s == nil {
		return ErrNilSummary
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
