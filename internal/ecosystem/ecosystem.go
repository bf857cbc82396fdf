// Package ecosystem loads grouped transactions and component value snapshots
// from YAML documents.
package ecosystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"launchgate/internal/domain"
	"launchgate/internal/synchronizer"
	"launchgate/pkg/platform/sentinel"
)

// Ecosystem is the transactions of every component, in document order. The
// position of a component is its group index in audit entries.
type Ecosystem struct {
	Components []Component `yaml:"components"`
}

type Component struct {
	Name         string        `yaml:"name"`
	Transactions []Transaction `yaml:"transactions"`
}

// Transaction is the document form of domain.Transaction. An omitted pure
// flag means the coin is not pure.
type Transaction struct {
	Source string `yaml:"source"`
	Value  int64  `yaml:"value"`
	Pure   bool   `yaml:"pure"`
}

// Groups converts the document into the governor's input shape.
func (e Ecosystem) Groups() [][]domain.Transaction {
	groups := make([][]domain.Transaction, len(e.Components))
	for i, c := range e.Components {
		group := make([]domain.Transaction, len(c.Transactions))
		for j, tx := range c.Transactions {
			group[j] = domain.NewTransaction(tx.Source, tx.Value, tx.Pure)
		}
		groups[i] = group
	}
	return groups
}

// Name returns the component name at group index i, or a positional
// placeholder when the document left it blank.
func (e Ecosystem) Name(i int) string {
	if i < 0 || i >= len(e.Components) || e.Components[i].Name == "" {
		return fmt.Sprintf("component-%d", i)
	}
	return e.Components[i].Name
}

// LoadTransactions reads an ecosystem document from path.
func LoadTransactions(path string) (Ecosystem, error) {
	var eco Ecosystem
	if err := loadYAML(path, &eco); err != nil {
		return Ecosystem{}, err
	}
	return eco, nil
}

// Snapshot is a set of reported component values.
type Snapshot struct {
	Components []ComponentValue `yaml:"components"`
}

// ComponentValue is an in-memory component. It reports its value and accepts
// reconciliation to the canonical value. It is not safe for concurrent use.
type ComponentValue struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

var _ synchronizer.ReconcilingProvider = (*ComponentValue)(nil)

func (c *ComponentValue) CurrentValue(context.Context) (int64, error) {
	return c.Value, nil
}

func (c *ComponentValue) Reconcile(_ context.Context, target int64) error {
	c.Value = target
	return nil
}

// LoadSnapshot reads a component snapshot from path. Component names must be
// unique and non-empty: a file holds one reading per component, so a repeated
// name is rejected instead of silently replacing the earlier reading.
// Replacement through RegisterComponent still applies once registered.
func LoadSnapshot(path string) (*Snapshot, error) {
	var snap Snapshot
	if err := loadYAML(path, &snap); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(snap.Components))
	for i := range snap.Components {
		name := strings.TrimSpace(snap.Components[i].Name)
		if name == "" {
			return nil, fmt.Errorf("snapshot %s: component %d has no name: %w", path, i, sentinel.ErrInvalidInput)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("snapshot %s: duplicate component %q: %w", path, name, sentinel.ErrInvalidInput)
		}
		seen[name] = struct{}{}
		snap.Components[i].Name = name
	}
	return &snap, nil
}

// Register adds every snapshot component to s.
func (snap *Snapshot) Register(s *synchronizer.Synchronizer) {
	for i := range snap.Components {
		c := &snap.Components[i]
		s.RegisterComponent(c.Name, c)
	}
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load failed (%s): %w", path, sentinel.ErrNotFound)
		}
		return fmt.Errorf("load failed (%s): %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse failed (%s): %w: %v", path, sentinel.ErrInvalidInput, err)
	}
	return nil
}
