// Command arbordemo builds a small widget tree and either renders it
// headless to PNG with gogpu/gg or shows it in an Ebitengine window.
//
// Settings come from ~/.config/arbor/config.toml (or $ARBOR_CONFIG) and
// ARBOR_* environment variables; flags override them.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phanxgames/arbor"
	"github.com/phanxgames/arbor/ebitenview"
	"github.com/phanxgames/arbor/ggraster"
	"github.com/phanxgames/arbor/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		window = flag.Bool("window", false, "open a window instead of rendering headless")
		output = flag.String("output", "", "PNG output file (default: timestamped file in snapshot dir)")
		frames = flag.Int("frames", 60, "frames to simulate before the headless snapshot")
		dump   = flag.Bool("dump", false, "print the widget tree")
		mode   = flag.String("mode", cfg.Render.Mode, "render mode: clipped or unclipped")
		script = flag.String("script", "", "JSON input script to run headless (clicks, drags, snapshots)")
	)
	flag.Parse()

	arbor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	arbor.SetDebug(cfg.Debug.Enabled)

	renderMode, err := arbor.ParseRenderMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	style, err := loadStyle(cfg.Style.Path)
	if err != nil {
		log.Fatalf("style: %v", err)
	}

	d := buildScene(cfg.Window.Width, cfg.Window.Height, style, renderMode)
	background := cfg.Background(style.FindColor(arbor.ColorBackground))

	if *window {
		err = ebitenview.Run(d.root, ebitenview.RunConfig{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Resizable:  cfg.Window.Resizable,
			ShowFPS:    cfg.Window.ShowFPS,
			Background: background,
			UpdateFunc: d.update,
		})
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	var sc *arbor.Script
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("script: %v", err)
		}
		if sc, err = arbor.LoadScript(data); err != nil {
			log.Fatal(err)
		}
	}

	path, err := renderHeadless(d, cfg, background, sc, *frames, *output)
	if err != nil {
		log.Fatal(err)
	}
	if *dump {
		fmt.Println(renderTree(d.root))
	}
	log.Printf("rendered %s (%dx%d, %s)", path, cfg.Window.Width, cfg.Window.Height, renderMode)
}

func loadStyle(path string) (*arbor.Style, error) {
	if path == "" {
		return arbor.DefaultStyle(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return arbor.LoadStyle(f)
}

// maxScriptFrames bounds a headless run waiting for a script to finish.
const maxScriptFrames = 60 * 60

// renderHeadless steps the scene at 60 Hz, rendering each damaged frame,
// and writes the final image. It runs frames frames, or until sc is done
// when a script is given.
func renderHeadless(d *demo, cfg config.Config, background arbor.Color, sc *arbor.Script, frames int, output string) (string, error) {
	surface, err := ggraster.NewSurface(cfg.Window.Width, cfg.Window.Height, ggraster.Options{
		Background: background,
		FontSize:   cfg.Render.FontSize,
	})
	if err != nil {
		return "", err
	}
	d.root.Elevate(surface)
	defer d.root.Lower()

	snapshot := func(label string) error {
		surface.Render(d.root)
		path, err := surface.Snapshot(cfg.Snapshot.Dir, label)
		if err == nil {
			log.Printf("snapshot %s", path)
		}
		return err
	}

	const dt = 1.0 / 60
	surface.Render(d.root)
	for i := 0; ; i++ {
		if sc != nil {
			if sc.Done() {
				break
			}
			if i >= maxScriptFrames {
				return "", fmt.Errorf("script did not finish within %d frames", maxScriptFrames)
			}
			sc.Step(d.root, snapshot)
		} else if i >= frames {
			break
		}
		if err := d.update(dt); err != nil {
			return "", err
		}
		surface.Render(d.root)
	}
	if sc != nil && sc.Err() != nil {
		return "", sc.Err()
	}

	if output == "" {
		return surface.Snapshot(cfg.Snapshot.Dir, fmt.Sprintf("%s-%d", d.root.RenderMode(), frames))
	}
	if err := surface.SavePNG(output); err != nil {
		return "", err
	}
	return output, nil
}
