// Package junit parses the JUnit XML result artifact emitted by the
// external test-execution engine.
package junit

import (
	"encoding/xml"
	"fmt"
)

// Suites is the <testsuites> document root most engines emit.
type Suites struct {
	XMLName xml.Name `xml:"testsuites"`
	Suites  []Suite  `xml:"testsuite"`
}

// Suite is one <testsuite> element with aggregate counters and optional
// per-case entries.
type Suite struct {
	XMLName  xml.Name   `xml:"testsuite"`
	Name     string     `xml:"name,attr"`
	Tests    int        `xml:"tests,attr"`
	Failures int        `xml:"failures,attr"`
	Errors   int        `xml:"errors,attr"`
	Skipped  int        `xml:"skipped,attr"`
	Time     float64    `xml:"time,attr"`
	Cases    []TestCase `xml:"testcase"`
}

// TestCase is one <testcase> element. At most one of Failure, Error and
// Skipped is present in well-formed input.
type TestCase struct {
	Name      string  `xml:"name,attr"`
	ClassName string  `xml:"classname,attr"`
	Time      float64 `xml:"time,attr"`
	Failure   *Marker `xml:"failure"`
	Error     *Marker `xml:"error"`
	Skipped   *Marker `xml:"skipped"`
}

// Marker is a failure/error/skipped child element carrying the outcome
// detail.
type Marker struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// Parse decodes a result artifact. Both document shapes are accepted: a
// <testsuites> wrapper (the first suite is returned) and a bare
// <testsuite> root.
func Parse(data []byte) (*Suite, error) {
	var wrapper Suites
	if err := xml.Unmarshal(data, &wrapper); err == nil {
		if len(wrapper.Suites) > 0 {
			return &wrapper.Suites[0], nil
		}
		// Empty wrapper: no suites ran at all.
		return &Suite{}, nil
	}

	var suite Suite
	if err := xml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse result artifact: %w", err)
	}
	return &suite, nil
}
