package main

import (
	"errors"
	"fmt"
	"io"
	"itinerary-planner-service/internal/adapters/generator"
	"itinerary-planner-service/internal/adapters/repositories"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic catalog",
	Long: `Generate synthetic catalog packages built from the compiled-in location
pool. The same --seed always produces the same catalog.

Output is written as a JSON export (stdout unless --out is given), or upserted
directly into the database with --insert.

Example:
  dbtool generate --count 500 --seed 7 --out data/seeds/generated.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		firstID, _ := cmd.Flags().GetInt("first-id")
		out, _ := cmd.Flags().GetString("out")
		insert, _ := cmd.Flags().GetBool("insert")

		if count < 1 {
			return errors.New("--count must be positive")
		}
		if insert && out != "" {
			return errors.New("--out and --insert are mutually exclusive")
		}

		pkgs := generator.Generate(generator.Seeded(seed), count, firstID)

		if insert {
			ctx := cmd.Context()
			conn, err := openDB(ctx, cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repositories.Migrate(ctx, conn); err != nil {
				return err
			}
			if err := repositories.NewPostgresCatalogRepository(conn).UpsertPackages(ctx, pkgs); err != nil {
				return err
			}
			slog.Info("generated packages inserted", "packages", len(pkgs), "seed", seed)
			return invalidateSnapshot(ctx)
		}

		var w io.Writer = cmd.OutOrStdout()
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %q: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		if err := repositories.EncodeSeed(w, pkgs); err != nil {
			return err
		}
		if out != "" {
			slog.Info("generated packages written", "packages", len(pkgs), "seed", seed, "file", out)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 100, "Number of packages to generate")
	generateCmd.Flags().Uint64("seed", 1, "Random seed")
	generateCmd.Flags().Int("first-id", 1, "Id of the first generated package")
	generateCmd.Flags().StringP("out", "o", "", "Write the JSON export to this file")
	generateCmd.Flags().Bool("insert", false, "Upsert into the database instead of writing JSON")
	rootCmd.AddCommand(generateCmd)
}
