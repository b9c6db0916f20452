package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/netkeep80/isocubic-sub006/internal/graphics"
	"github.com/netkeep80/isocubic-sub006/internal/grid"
	"github.com/netkeep80/isocubic-sub006/internal/scene"
)

const (
	winWidth  = 1024
	winHeight = 640
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "scene YAML file (empty: built-in scene)")
	cubePath := flag.String("cube", "", "cube JSON file overriding the scene's material")
	quality := flag.Float64("quality", 0, "LOD threshold scale hint, overrides the scene when > 0")
	fpsCap := flag.Int("fps", 120, "frame rate cap (0: uncapped)")
	lodColors := flag.Bool("lod-colors", false, "start with per-level debug tint enabled")
	flag.Parse()

	cfg, err := scene.Load(*configPath)
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}
	if *cubePath != "" {
		c, err := scene.LoadCubeJSON(*cubePath)
		if err != nil {
			log.Fatalf("load cube config: %v", err)
		}
		cfg.Cube = c
	}
	if *quality > 0 {
		cfg.Quality = float32(*quality)
	}

	manager, err := grid.NewManager(cfg.Grid, cfg.Cube, cfg.LOD)
	if err != nil {
		log.Fatalf("build grid: %v", err)
	}
	manager.SetQuality(cfg.Quality)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	renderer, err := graphics.NewRenderer()
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	renderer.DebugLOD = *lodColors

	camera := graphics.NewOrbitCamera(cfg.Grid.Center, startDistance(cfg), winWidth, winHeight)

	setupInputHandlers(window, manager, renderer, camera)
	runLoop(window, manager, renderer, camera, *fpsCap)
}

// startDistance places the camera far enough to see the whole grid while
// keeping the finest LOD band reachable by zooming in.
func startDistance(cfg scene.Config) float32 {
	step := cfg.Grid.CubeScale + cfg.Grid.Spacing
	extent := float32(cfg.Grid.Size[0]) * step
	if e := float32(cfg.Grid.Size[2]) * step; e > extent {
		extent = e
	}
	d := extent * 2.5
	if d < 5 {
		d = 5
	}
	return d
}
