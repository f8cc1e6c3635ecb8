// Package catalog holds the master, project-keyed mapping of test case
// definitions. It is the source of truth for test case content; execution
// history lives in the testrun package as independent snapshots.
package catalog

import (
	"errors"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

var (
	// ErrProjectNotFound is returned when a project has no catalog entry.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectName is returned when a project name is empty.
	ErrInvalidProjectName = errors.New("project name is required")
)

// Catalog maps project names to their current test case definitions.
// Project key order is insertion order, which matters for display.
// Catalog is not safe for concurrent use; the reconciliation engine
// serializes access.
type Catalog struct {
	names  []string
	groups map[string][]testcase.TestCase
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		groups: make(map[string][]testcase.TestCase),
	}
}

// AddProject creates or overwrites the entry for the named project with the
// given test cases. Overwriting an existing entry is allowed; the return
// value reports whether an entry was replaced.
func (c *Catalog) AddProject(name string, testCases []testcase.TestCase) (replaced bool) {
	if _, ok := c.groups[name]; ok {
		c.groups[name] = testcase.CloneAll(testCases)
		return true
	}
	c.names = append(c.names, name)
	c.groups[name] = testcase.CloneAll(testCases)
	return false
}

// AddTestCase prepends a test case to the named project's list. A missing
// project is reported as an error rather than silently materializing an
// empty entry.
func (c *Catalog) AddTestCase(project string, tc testcase.TestCase) error {
	existing, ok := c.groups[project]
	if !ok {
		return ErrProjectNotFound
	}
	c.groups[project] = append([]testcase.TestCase{tc.Clone()}, existing...)
	return nil
}

// UpdateTestCase replaces, in every project, any test case whose id matches
// the updated one. Matching is by id only; the suite field is not consulted.
func (c *Catalog) UpdateTestCase(updated testcase.TestCase) {
	for name, testCases := range c.groups {
		for i, tc := range testCases {
			if tc.ID == updated.ID {
				testCases[i] = updated.Clone()
			}
		}
		c.groups[name] = testCases
	}
}

// RemoveTestCase filters the test case with the given id out of every
// project.
func (c *Catalog) RemoveTestCase(id string) {
	for name, testCases := range c.groups {
		filtered := testCases[:0]
		for _, tc := range testCases {
			if tc.ID != id {
				filtered = append(filtered, tc)
			}
		}
		c.groups[name] = filtered
	}
}

// RemoveProject deletes the entry for the named project. It reports whether
// an entry existed.
func (c *Catalog) RemoveProject(name string) bool {
	if _, ok := c.groups[name]; !ok {
		return false
	}
	delete(c.groups, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
	return true
}

// HasProject reports whether the named project has a catalog entry.
func (c *Catalog) HasProject(name string) bool {
	_, ok := c.groups[name]
	return ok
}

// ProjectNames returns the project names in insertion order.
func (c *Catalog) ProjectNames() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// TestCases returns deep copies of the named project's test cases.
func (c *Catalog) TestCases(project string) ([]testcase.TestCase, bool) {
	testCases, ok := c.groups[project]
	if !ok {
		return nil, false
	}
	return testcase.CloneAll(testCases), true
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.names)
}

// TotalTestCases returns the number of test cases across all projects.
func (c *Catalog) TotalTestCases() int {
	total := 0
	for _, testCases := range c.groups {
		total += len(testCases)
	}
	return total
}
