// Package catalog records generated network instances in a badger key-value
// store so later runs can list and reload them without walking a data
// directory.
//
// Key layout:
//
//	<family> NUL <file name>  =>  network in the tnfile format (open legs kept)
//
// An empty Options.Path opens an in-memory catalog.
package catalog

import (
	"bytes"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/tnfile"
)

var (
	// ErrNotFound indicates no entry under the requested name.
	ErrNotFound = errors.New("catalog: not found")

	// ErrReadOnly indicates a write to a read-only catalog, or a read-only
	// catalog requested without a path.
	ErrReadOnly = errors.New("catalog: read-only")
)

const keySep = 0x00

// Options configures Open.
type Options struct {
	// Path is the badger directory; empty means in-memory.
	Path string
	// ReadOnly opens an existing catalog without write access.
	ReadOnly bool
}

// Catalog is a badger-backed instance store. It is safe for concurrent use.
type Catalog struct {
	db       *badger.DB
	readOnly bool
}

// Entry describes one stored instance.
type Entry struct {
	Name  string
	Meta  tnfile.Meta
	Bytes int64
}

// Open opens (or creates) the catalog described by opts.
func Open(opts Options) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.NumVersionsToKeep = 1

	if opts.Path == "" {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrReadOnly, "a read-only catalog needs a path")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %q", opts.Path)
	}
	klog.V(1).Infof("catalog: opened %q (read-only %v)", opts.Path, opts.ReadOnly)

	return &Catalog{db: db, readOnly: opts.ReadOnly}, nil
}

// Close releases the store.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func key(f builder.Family, name string) []byte {
	k := append([]byte(f.String()), keySep)
	return append(k, name...)
}

// Put stores inst under tnfile.FileName(inst), replacing any previous entry,
// and returns the name.
func (c *Catalog) Put(inst builder.Instance) (string, error) {
	if c.readOnly {
		return "", ErrReadOnly
	}
	name := tnfile.FileName(inst)

	var buf bytes.Buffer
	if err := tnfile.Write(&buf, inst.Network, builder.LegOpen); err != nil {
		return "", err
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(inst.Family, name), buf.Bytes())
	})
	if err != nil {
		return "", errors.Wrapf(err, "catalog: put %s", name)
	}

	return name, nil
}

// Get loads the network stored under name.
func (c *Catalog) Get(name string) (*core.Network, error) {
	meta, err := tnfile.ParseFileName(name)
	if err != nil {
		return nil, err
	}

	var val []byte
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(meta.Family, name))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	}
	if err != nil {
		return nil, err
	}

	return tnfile.Read(name, bytes.NewReader(val))
}

// List returns the entries of family in key order.
func (c *Catalog) List(f builder.Family) ([]Entry, error) {
	prefix := key(f, "")

	var out []Entry
	err := c.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.PrefetchValues = false
		itOpts.Prefix = prefix
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := string(item.Key()[len(prefix):])
			meta, err := tnfile.ParseFileName(name)
			if err != nil {
				return err
			}
			out = append(out, Entry{Name: name, Meta: meta, Bytes: item.ValueSize()})
		}
		return nil
	})

	return out, err
}
