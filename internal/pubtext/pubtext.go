// Package pubtext reads the per-accession publication text files that back
// submission building. Each accession has one JSON document named
// "<PXD>_PubText.json" in the configured directory.
package pubtext

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/huangsam/sdrfbench/schema"
)

const fileSuffix = "_PubText.json"

// Store loads publication documents from a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given directory. The directory is
// not touched until a document is requested.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads and parses the document for one accession.
func (s *Store) Load(pxd string) (*schema.Document, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, pxd+fileSuffix))
	if err != nil {
		return nil, err
	}
	var doc schema.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document for %s: %w", pxd, err)
	}
	return &doc, nil
}

// List returns the accessions with a document present, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var pxds []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		pxds = append(pxds, strings.TrimSuffix(name, fileSuffix))
	}
	sort.Strings(pxds)
	return pxds, nil
}
