package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/octologs/wheelpicker/internal/picker"
	"github.com/octologs/wheelpicker/internal/testutil"
)

func testForest() []*picker.Option {
	return []*picker.Option{
		picker.NewOption("Mexico",
			picker.NewOption("Jalisco",
				picker.NewOption("Guadalajara"),
				picker.NewOption("Zapopan"),
			),
		),
		picker.NewOption("Canada",
			picker.NewOption("Ontario",
				picker.NewOption("Toronto"),
			),
		),
	}
}

func TestRepository_ImportAndLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ImportForest(ctx, "locations", testForest()); err != nil {
		t.Fatalf("ImportForest failed: %v", err)
	}

	forest, err := repo.LoadForest(ctx, "locations")
	if err != nil {
		t.Fatalf("LoadForest failed: %v", err)
	}

	if got := picker.MaxLevel(forest); got != 3 {
		t.Fatalf("MaxLevel = %d, want 3", got)
	}
	if len(forest) != 2 || forest[0].Label != "Mexico" || forest[1].Label != "Canada" {
		t.Fatalf("root order wrong: %+v", forest)
	}

	cities := forest[0].Children[0].Children
	if len(cities) != 2 || cities[0].Label != "Guadalajara" || cities[1].Label != "Zapopan" {
		t.Errorf("city order wrong: %+v", cities)
	}
}

func TestRepository_ImportReplacesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ImportForest(ctx, "d", testForest()); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	replacement := []*picker.Option{picker.NewOption("only")}
	if err := repo.ImportForest(ctx, "d", replacement); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	forest, err := repo.LoadForest(ctx, "d")
	if err != nil {
		t.Fatalf("LoadForest failed: %v", err)
	}
	if len(forest) != 1 || forest[0].Label != "only" {
		t.Errorf("forest = %+v, want the replacement only", forest)
	}
}

func TestRepository_LoadMissingDataset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.LoadForest(context.Background(), "nope")
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("err = %v, want ErrDatasetNotFound", err)
	}
}

func TestRepository_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ImportForest(ctx, "", testForest()); !errors.Is(err, ErrEmptyDatasetName) {
		t.Errorf("empty name: err = %v, want ErrEmptyDatasetName", err)
	}
	if err := repo.ImportForest(ctx, "d", nil); !errors.Is(err, ErrEmptyForest) {
		t.Errorf("empty forest: err = %v, want ErrEmptyForest", err)
	}
}

func TestRepository_ListAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.ImportForest(ctx, "a", testForest()); err != nil {
		t.Fatalf("import a failed: %v", err)
	}
	if err := repo.ImportForest(ctx, "b", testForest()); err != nil {
		t.Fatalf("import b failed: %v", err)
	}

	names, err := repo.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("ListDatasets failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}

	if err := repo.DeleteDataset(ctx, "a"); err != nil {
		t.Fatalf("DeleteDataset failed: %v", err)
	}
	if err := repo.DeleteDataset(ctx, "a"); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("second delete: err = %v, want ErrDatasetNotFound", err)
	}

	// Options of the deleted dataset must cascade away.
	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM options o JOIN datasets d ON o.dataset_id = d.id WHERE d.name = 'a'",
	).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned options = %d, want 0", count)
	}
}
