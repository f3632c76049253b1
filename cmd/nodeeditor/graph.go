package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Graph is the demo graph shown by the run command.
type Graph struct {
	Nodes []GraphNode `yaml:"nodes"`
	Links []GraphLink `yaml:"links,omitempty"`
}

// GraphNode is one node: a title row, input pins on the left and output pins
// on the right. Pin ids are derived from the node id.
type GraphNode struct {
	ID      int      `yaml:"id"`
	Title   string   `yaml:"title"`
	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
}

// GraphLink connects two nodes.
type GraphLink struct {
	ID   int `yaml:"id"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// InputID returns the pin id of input i.
func (n GraphNode) InputID(i int) int { return n.ID*100 + i }

// OutputID returns the pin id of output i.
func (n GraphNode) OutputID(i int) int { return n.ID*100 + 50 + i }

// LoadGraph reads a YAML graph file.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	g, err := ParseGraph(data)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", path, err)
	}
	return g, nil
}

// ParseGraph decodes and validates a YAML graph.
func ParseGraph(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks that node ids are unique and that links join known nodes.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return errors.New("graph has no nodes")
	}
	seen := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
	}
	for _, l := range g.Links {
		if !seen[l.From] || !seen[l.To] {
			return fmt.Errorf("link %d joins unknown node (%d -> %d)", l.ID, l.From, l.To)
		}
	}
	return nil
}

// DefaultGraph is shown when no graph file is given.
func DefaultGraph() *Graph {
	return &Graph{
		Nodes: []GraphNode{
			{ID: 1, Title: "Constant", Outputs: []string{"value"}},
			{ID: 2, Title: "Time", Outputs: []string{"seconds", "frame"}},
			{ID: 3, Title: "Multiply", Inputs: []string{"a", "b"}, Outputs: []string{"result"}},
			{ID: 4, Title: "Output", Inputs: []string{"color"}},
		},
		Links: []GraphLink{
			{ID: 1, From: 1, To: 3},
			{ID: 2, From: 2, To: 3},
			{ID: 3, From: 3, To: 4},
		},
	}
}
