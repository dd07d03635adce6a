// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/partgraph/partition"
)

// PartitionsDoc is the document form of a partition.Storage.
type PartitionsDoc[T any] struct {
	Storage    string `yaml:"storage,omitempty" json:"storage,omitempty"`
	Partitions [][]T  `yaml:"partitions" json:"partitions"`
}

// EncodePartitions renders s as a document.
func EncodePartitions[T any](s partition.Storage[T], opts ...Option) ([]byte, error) {
	doc := PartitionsDoc[T]{Storage: s.Kind().String(), Partitions: partition.Snapshot(s)}
	out, err := newConfig(opts).marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("EncodePartitions: %w", err)
	}

	return out, nil
}

// DecodePartitions parses a partition document into the storage kind it
// names (contiguous when absent). popts configure the container.
func DecodePartitions[T any](data []byte, popts []partition.Option, opts ...Option) (partition.Storage[T], error) {
	var doc PartitionsDoc[T]
	if err := newConfig(opts).unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodePartitions: %w", err)
	}
	kind := partition.KindContiguous
	if doc.Storage != "" {
		var err error
		if kind, err = partition.ParseKind(doc.Storage); err != nil {
			return nil, fmt.Errorf("DecodePartitions: %w", err)
		}
	}
	s, err := partition.From(kind, doc.Partitions, popts...)
	if err != nil {
		return nil, fmt.Errorf("DecodePartitions: %w", err)
	}

	return s, nil
}
