package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database/seeder"
	"portfolio/internal/snapshot"
)

func openContainer(cmd *cobra.Command) (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		logger.SetOutput(io.Discard)
	}
	return app.NewContainer(cfg, logger)
}

// --- migrate ---

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openContainer(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Migrate(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

// --- seed ---

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample profile, skills, projects and services",
	Long: `Insert the sample portfolio rows. Existing rows are left alone, so the
command can be run repeatedly. The shared snapshot copy is dropped so other
instances pick up the new data on their next fetch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openContainer(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}).Run(cmd.Context(), c.DB); err != nil {
			return err
		}
		if err := c.Cache.Delete(cmd.Context(), snapshot.MirrorKey); err != nil {
			c.Logger.Printf("[Seeder] snapshot invalidation failed error=%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "sample data seeded")
		return nil
	},
}

// --- data ---

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Print the combined record as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openContainer(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		rec, err := c.Portfolio.Load(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

// --- cv ---

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Fetch the record and export the CV as PDF",
	Long: `Fetch the record and export the CV as PDF.

Examples:
  portfolioctl cv
  portfolioctl cv --out ./build`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		c, err := openContainer(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		if _, err := c.Portfolio.Load(cmd.Context()); err != nil {
			return err
		}

		tmp, err := os.CreateTemp(out, ".cv-*.pdf")
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer os.Remove(tmp.Name())

		name, err := c.CV.Export(cmd.Context(), tmp)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		dst := filepath.Join(out, name)
		if err := os.Rename(tmp.Name(), dst); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dst)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress log output")
	cvCmd.Flags().String("out", ".", "directory to write the PDF into")
}
