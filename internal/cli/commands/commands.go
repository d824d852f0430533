// Package commands provides CLI command implementations for the stitch tool.
// Uses urfave/cli v2 for command-line interface construction.
package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ArmyClaw/open-stitch-studio/internal/config"
	"github.com/ArmyClaw/open-stitch-studio/internal/core/search"
	"github.com/ArmyClaw/open-stitch-studio/internal/document"
	"github.com/ArmyClaw/open-stitch-studio/internal/parser"
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// BuildCommands constructs all CLI commands and returns them as a slice.
// Each command is registered with appropriate flags and action handlers.
//
// Commands include:
//   - info: Inspect a pattern file
//   - convert: Convert a pattern between formats
//   - palette: Manage the thread-color catalog
func BuildCommands(service *document.Service, catalog contracts.Catalog, cfg *config.Config) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "info",
			Usage:     "Print a summary of a pattern file",
			ArgsUsage: "<file>",
			Action: func(c *cli.Context) error {
				return patternInfo(service, c.Args().First())
			},
		},
		{
			Name:      "convert",
			Usage:     "Convert a pattern file to another format",
			ArgsUsage: "<input> <output>",
			Action: func(c *cli.Context) error {
				return convertPattern(service, c.Args().Get(0), c.Args().Get(1))
			},
		},
		{
			Name:  "palette",
			Usage: "Manage the thread-color catalog",
			Subcommands: []*cli.Command{
				{
					Name:  "brands",
					Usage: "List the brands in the catalog",
					Action: func(c *cli.Context) error {
						return listBrands(catalog)
					},
				},
				{
					Name:      "list",
					Usage:     "List the colors of a brand",
					ArgsUsage: "<brand>",
					Action: func(c *cli.Context) error {
						return listBrand(catalog, c.Args().First())
					},
				},
				{
					Name:      "find",
					Usage:     "Search the catalog by number or color name",
					ArgsUsage: "<query>",
					Action: func(c *cli.Context) error {
						return findThread(catalog, strings.Join(c.Args().Slice(), " "))
					},
				},
				{
					Name:      "import",
					Usage:     "Import catalog entries from a YAML file",
					ArgsUsage: "<file>",
					Action: func(c *cli.Context) error {
						return importCatalog(catalog, c.Args().First())
					},
				},
				{
					Name:      "export",
					Usage:     "Export the colors of a brand to a YAML file",
					ArgsUsage: "<brand> <file>",
					Action: func(c *cli.Context) error {
						return exportCatalog(catalog, c.Args().Get(0), c.Args().Get(1))
					},
				},
			},
		},
	}
}

func patternInfo(service *document.Service, path string) error {
	if path == "" {
		return fmt.Errorf("missing pattern file argument")
	}
	key, err := service.LoadPattern(path)
	if err != nil {
		return err
	}
	defer service.ClosePattern(key)

	return service.WithProject(key, func(patproj *models.PatternProject) {
		pattern := &patproj.Pattern
		fmt.Printf("Title:    %s\n", pattern.Info.Title)
		if pattern.Info.Author != "" {
			fmt.Printf("Author:   %s\n", pattern.Info.Author)
		}
		fmt.Printf("Fabric:   %dx%d %s %s (%d/%d spi)\n",
			pattern.Fabric.Width, pattern.Fabric.Height,
			pattern.Fabric.Name, pattern.Fabric.Kind,
			pattern.Fabric.SPI[0], pattern.Fabric.SPI[1])
		fmt.Printf("Palette:  %d colors\n", len(pattern.Palette))
		fmt.Printf("Stitches: %d full, %d part, %d line, %d node, %d special\n",
			pattern.FullStitches.Len(), pattern.PartStitches.Len(),
			pattern.LineStitches.Len(), pattern.NodeStitches.Len(),
			pattern.SpecialStitches.Len())
	})
}

func convertPattern(service *document.Service, input, output string) error {
	if input == "" || output == "" {
		return fmt.Errorf("usage: convert <input> <output>")
	}
	if _, err := parser.FormatFromPath(output); err != nil {
		return err
	}
	key, err := service.LoadPattern(input)
	if err != nil {
		return err
	}
	defer service.ClosePattern(key)

	if err := service.SavePattern(key, output); err != nil {
		return err
	}
	fmt.Printf("Written %s\n", output)
	return nil
}

func listBrands(catalog contracts.Catalog) error {
	brands, err := catalog.Brands(context.Background())
	if err != nil {
		return err
	}
	for _, brand := range brands {
		fmt.Println(brand)
	}
	return nil
}

func listBrand(catalog contracts.Catalog, brand string) error {
	if brand == "" {
		return fmt.Errorf("missing brand argument")
	}
	items, err := catalog.ListBrand(context.Background(), brand)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%-8s #%s %s\n", item.Number, item.Color, item.Name)
	}
	return nil
}

func findThread(catalog contracts.Catalog, query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("missing query argument")
	}

	ctx := context.Background()
	brands, err := catalog.Brands(ctx)
	if err != nil {
		return err
	}
	var items []models.PaletteItem
	for _, brand := range brands {
		brandItems, err := catalog.ListBrand(ctx, brand)
		if err != nil {
			return err
		}
		items = append(items, brandItems...)
	}

	results := search.NewEngine().Search(query, items, search.Options{Threshold: 30, Limit: 10})
	if len(results) == 0 {
		fmt.Println("No matching threads")
		return nil
	}
	for _, result := range results {
		fmt.Printf("%-12s %-8s #%s %s\n", result.Item.Brand, result.Item.Number, result.Item.Color, result.Item.Name)
	}
	return nil
}

// catalogFile is the YAML layout of a catalog import/export file.
type catalogFile struct {
	Threads []catalogThread `yaml:"threads"`
}

type catalogThread struct {
	Brand        string  `yaml:"brand"`
	Number       string  `yaml:"number"`
	Name         string  `yaml:"name"`
	Color        string  `yaml:"color"`
	BeadLength   float64 `yaml:"bead_length,omitempty"`
	BeadDiameter float64 `yaml:"bead_diameter,omitempty"`
}

func importCatalog(catalog contracts.Catalog, path string) error {
	if path == "" {
		return fmt.Errorf("missing file argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	ctx := context.Background()
	for _, thread := range file.Threads {
		item := models.PaletteItem{
			Brand:  thread.Brand,
			Number: thread.Number,
			Name:   thread.Name,
			Color:  thread.Color,
		}
		if thread.BeadLength > 0 && thread.BeadDiameter > 0 {
			item.Bead = &models.Bead{Length: thread.BeadLength, Diameter: thread.BeadDiameter}
		}
		if err := catalog.SaveItem(ctx, item); err != nil {
			return err
		}
	}
	fmt.Printf("Imported %d threads\n", len(file.Threads))
	return nil
}

func exportCatalog(catalog contracts.Catalog, brand, path string) error {
	if brand == "" || path == "" {
		return fmt.Errorf("usage: palette export <brand> <file>")
	}
	items, err := catalog.ListBrand(context.Background(), brand)
	if err != nil {
		return err
	}

	file := catalogFile{Threads: make([]catalogThread, 0, len(items))}
	for _, item := range items {
		thread := catalogThread{
			Brand:  item.Brand,
			Number: item.Number,
			Name:   item.Name,
			Color:  item.Color,
		}
		if item.Bead != nil {
			thread.BeadLength = item.Bead.Length
			thread.BeadDiameter = item.Bead.Diameter
		}
		file.Threads = append(file.Threads, thread)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
