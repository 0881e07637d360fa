package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/octologs/wheelpicker/internal/dataset"
	"github.com/octologs/wheelpicker/internal/picker"
)

var importCmd = &cobra.Command{
	Use:   "import <name> <file.yaml>",
	Short: "Import a YAML option tree as a named dataset",
	Long: `Import reads a nested YAML document (mappings for branches, lists for
leaves) and stores it as a dataset for the linked picker. An existing
dataset with the same name is replaced.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List stored datasets",
	Args:  cobra.NoArgs,
	RunE:  runDatasets,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var src picker.Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	forest := picker.BuildTree(src)
	if len(forest) == 0 {
		return fmt.Errorf("%s contains no usable options", path)
	}

	db, err := dataset.InitDB(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := dataset.NewRepository(db)
	if err := repo.ImportForest(cmd.Context(), name, forest); err != nil {
		return err
	}

	fmt.Printf("imported %q (%d levels)\n", name, picker.MaxLevel(forest))
	return nil
}

func runDatasets(cmd *cobra.Command, args []string) error {
	db, err := dataset.InitDB(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	names, err := dataset.NewRepository(db).ListDatasets(cmd.Context())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no datasets stored")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
