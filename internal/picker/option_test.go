package picker

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuildTree_TwoLevelMap(t *testing.T) {
	src := MapSource(
		MapEntry{Label: "A", Value: MapSource(
			MapEntry{Label: "B", Value: ListSource(ScalarSource("x"), ScalarSource("y"))},
		)},
		MapEntry{Label: "C", Value: MapSource(
			MapEntry{Label: "D", Value: ListSource(ScalarSource("z"))},
		)},
	)

	forest := BuildTree(src)

	if got := MaxLevel(forest); got != 3 {
		t.Fatalf("MaxLevel = %d, want 3", got)
	}
	if len(forest) != 2 || forest[0].Label != "A" || forest[1].Label != "C" {
		t.Fatalf("top-level labels wrong: %+v", forest)
	}

	b := forest[0].Children
	if len(b) != 1 || b[0].Label != "B" {
		t.Fatalf("A's children wrong: %+v", b)
	}
	leaves := b[0].Children
	if len(leaves) != 2 || leaves[0].Label != "x" || leaves[1].Label != "y" {
		t.Fatalf("B's children wrong: %+v", leaves)
	}
}

func TestBuildTree_FourLevels(t *testing.T) {
	// Continent -> Country -> State -> City; depth must be unbounded.
	src := MapSource(
		MapEntry{Label: "America", Value: MapSource(
			MapEntry{Label: "Mexico", Value: MapSource(
				MapEntry{Label: "Jalisco", Value: ListSource(
					ScalarSource("Guadalajara"), ScalarSource("Zapopan"),
				)},
			)},
			MapEntry{Label: "Canada", Value: MapSource(
				MapEntry{Label: "Ontario", Value: ListSource(ScalarSource("Toronto"))},
			)},
		)},
	)

	forest := BuildTree(src)

	if got := MaxLevel(forest); got != 4 {
		t.Fatalf("MaxLevel = %d, want 4", got)
	}

	jalisco := forest[0].Children[0].Children[0]
	if jalisco.Label != "Jalisco" {
		t.Fatalf("level 3 label = %q, want Jalisco", jalisco.Label)
	}
	cities := jalisco.Children
	if len(cities) != 2 || cities[0].Label != "Guadalajara" || cities[1].Label != "Zapopan" {
		t.Fatalf("leaf labels wrong: %+v", cities)
	}
}

func TestBuildTree_SkipsEmptyBranches(t *testing.T) {
	src := MapSource(
		MapEntry{Label: "kept", Value: ListSource(ScalarSource("item"))},
		MapEntry{Label: "empty list", Value: ListSource()},
		MapEntry{Label: "empty map", Value: MapSource()},
		MapEntry{Label: "blank scalar", Value: ScalarSource("")},
	)

	forest := BuildTree(src)

	if len(forest) != 1 || forest[0].Label != "kept" {
		t.Fatalf("expected only the kept branch, got %+v", forest)
	}
}

func TestBuildColumns_Independent(t *testing.T) {
	src := ListSource(
		ListSource(ScalarSource("a"), ScalarSource("b")),
		ListSource(ScalarSource("1"), ScalarSource("2"), ScalarSource("3")),
	)

	columns := BuildColumns(src)

	if len(columns) != 2 {
		t.Fatalf("column count = %d, want 2", len(columns))
	}
	if len(columns[0].Children) != 2 || len(columns[1].Children) != 3 {
		t.Fatalf("column item counts wrong: %d, %d",
			len(columns[0].Children), len(columns[1].Children))
	}
}

func TestSource_UnmarshalYAML(t *testing.T) {
	data := `
America:
  Mexico:
    Jalisco: [Guadalajara, Zapopan]
  Canada:
    Ontario: [Toronto]
Europe:
  Spain:
    Andalusia: [Sevilla]
`
	var src Source
	if err := yaml.Unmarshal([]byte(data), &src); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if src.Kind != SourceMap {
		t.Fatalf("Kind = %v, want SourceMap", src.Kind)
	}
	// Mapping order must be preserved.
	if src.Entries[0].Label != "America" || src.Entries[1].Label != "Europe" {
		t.Fatalf("entry order wrong: %q, %q", src.Entries[0].Label, src.Entries[1].Label)
	}

	forest := BuildTree(src)
	if got := MaxLevel(forest); got != 4 {
		t.Fatalf("MaxLevel = %d, want 4", got)
	}
	if forest[1].Children[0].Children[0].Children[0].Label != "Sevilla" {
		t.Fatal("leaf label Sevilla not preserved")
	}
}

func TestMaxLevel_EmptyChildrenEqualsAbsent(t *testing.T) {
	withNil := []*Option{{Label: "a"}}
	withEmpty := []*Option{{Label: "a", Children: []*Option{}}}

	if MaxLevel(withNil) != MaxLevel(withEmpty) {
		t.Errorf("nil and empty children should yield the same level: %d vs %d",
			MaxLevel(withNil), MaxLevel(withEmpty))
	}
	if got := MaxLevel(nil); got != 0 {
		t.Errorf("MaxLevel(nil) = %d, want 0", got)
	}
}
