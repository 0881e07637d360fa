package picker

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// SourceKind tags the shape of one nested-data node.
type SourceKind int

const (
	SourceScalar SourceKind = iota
	SourceList
	SourceMap
)

// Source is a tagged variant describing developer-authored nested picker
// data: a scalar leaf, an ordered list, or an ordered label-to-source
// mapping. It is decoded once into an immutable Option forest; malformed
// entries are skipped rather than reported, since the data is static and
// a partial picker beats a crash.
type Source struct {
	Kind    SourceKind
	Scalar  string
	List    []Source
	Entries []MapEntry
}

// MapEntry is one ordered key/value pair of a map source.
type MapEntry struct {
	Label string
	Value Source
}

// ScalarSource returns a scalar leaf source.
func ScalarSource(v string) Source {
	return Source{Kind: SourceScalar, Scalar: v}
}

// ListSource returns an ordered list source.
func ListSource(items ...Source) Source {
	return Source{Kind: SourceList, List: items}
}

// MapSource returns an ordered mapping source.
func MapSource(entries ...MapEntry) Source {
	return Source{Kind: SourceMap, Entries: entries}
}

// UnmarshalYAML decodes a yaml node into a source, preserving mapping
// order. Node shapes it cannot interpret decode to an empty scalar, which
// the tree builder then skips.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Kind = SourceScalar
		s.Scalar = node.Value
	case yaml.SequenceNode:
		s.Kind = SourceList
		s.List = make([]Source, 0, len(node.Content))
		for _, item := range node.Content {
			var child Source
			if err := child.UnmarshalYAML(item); err != nil {
				continue
			}
			s.List = append(s.List, child)
		}
	case yaml.MappingNode:
		s.Kind = SourceMap
		s.Entries = make([]MapEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				continue
			}
			var child Source
			if err := child.UnmarshalYAML(valNode); err != nil {
				continue
			}
			s.Entries = append(s.Entries, MapEntry{Label: keyNode.Value, Value: child})
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			return s.UnmarshalYAML(node.Alias)
		}
	}
	return nil
}

// BuildTree turns a source into an Option forest whose levels are the
// picker's linked columns. Scalars become leaves; a map entry whose value
// is a non-empty list becomes a branch with leaf children; a map entry
// whose value is itself a non-empty map recurses to arbitrary depth.
// Empty lists and maps produce no node.
func BuildTree(src Source) []*Option {
	switch src.Kind {
	case SourceScalar:
		if src.Scalar == "" {
			return nil
		}
		return []*Option{NewOption(src.Scalar)}
	case SourceList:
		forest := make([]*Option, 0, len(src.List))
		for _, item := range src.List {
			forest = append(forest, BuildTree(item)...)
		}
		return forest
	case SourceMap:
		forest := make([]*Option, 0, len(src.Entries))
		for _, entry := range src.Entries {
			children := BuildTree(entry.Value)
			if len(children) == 0 {
				continue
			}
			forest = append(forest, NewOption(entry.Label, children...))
		}
		return forest
	}
	return nil
}

// BuildColumns turns a source into independent column item lists: each
// top-level list element (or map entry) is one column, and its own items
// become that column's flat item set. No cross-column dependency exists.
func BuildColumns(src Source) []*Option {
	columns := make([]*Option, 0)
	switch src.Kind {
	case SourceList:
		for i, item := range src.List {
			items := BuildTree(item)
			if len(items) == 0 {
				continue
			}
			col := &Option{Label: columnName(i), Children: items}
			columns = append(columns, col)
		}
	case SourceMap:
		for _, entry := range src.Entries {
			items := BuildTree(entry.Value)
			if len(items) == 0 {
				continue
			}
			columns = append(columns, NewOption(entry.Label, items...))
		}
	case SourceScalar:
		if items := BuildTree(src); len(items) > 0 {
			columns = append(columns, &Option{Label: columnName(0), Children: items})
		}
	}
	return columns
}

func columnName(i int) string {
	return "column " + strconv.Itoa(i)
}
