package main

import (
	"errors"
	"log"
	"os"

	"github.com/gravitas-games/hexgrid/internal/config"
	"github.com/gravitas-games/hexgrid/internal/gamemap"
	"github.com/gravitas-games/hexgrid/internal/preview"
	"github.com/gravitas-games/hexgrid/pkg/models"
)

func main() {
	log.Println("Starting hexgrid preview...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if configPath == "" {
		configPath = "./configs/grid.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded from %s", configPath)

	board, err := buildBoard(cfg)
	if err != nil {
		log.Fatalf("Failed to build board: %v", err)
	}

	if err := render(cfg, board); err != nil {
		log.Fatalf("Failed to render preview: %v", err)
	}
	log.Printf("Preview written to %s", cfg.Preview.Output)
}

// buildBoard generates the configured shape and applies cell overrides
// and the optional path highlight.
func buildBoard(cfg *config.Config) (*gamemap.Board, error) {
	shape, err := cfg.Shape.Shape()
	if err != nil {
		return nil, err
	}
	board := gamemap.New(shape, cfg.Layout.Layout())

	for _, c := range cfg.Cells {
		if err := board.Update(c.Hex(), c.Attrs); err != nil {
			if errors.Is(err, gamemap.ErrOutOfBoard) {
				log.Printf("Skipping cell override: %v", err)
				continue
			}
			return nil, err
		}
	}

	if cfg.Path != nil {
		route, err := board.Path(cfg.Path.From.Hex(), cfg.Path.To.Hex())
		if err != nil {
			return nil, err
		}
		for _, h := range route {
			if err := board.Update(h, models.Attributes{Fill: cfg.Path.Fill}); err != nil {
				return nil, err
			}
		}
		log.Printf("Path of %d hexes from %s to %s", len(route), route[0].ID(), route[len(route)-1].ID())
	}
	return board, nil
}

func render(cfg *config.Config, board *gamemap.Board) error {
	r, err := preview.New(preview.Options{
		Width:       cfg.Preview.Width,
		Height:      cfg.Preview.Height,
		Background:  cfg.Preview.Background,
		Fill:        cfg.Preview.Fill,
		Stroke:      cfg.Preview.Stroke,
		StrokeWidth: cfg.Preview.StrokeWidth,
		FontSize:    cfg.Preview.FontSize,
		LabelIDs:    cfg.Preview.LabelIDs,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	img, err := r.Render(board)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Preview.Output)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
