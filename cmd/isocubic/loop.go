package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/netkeep80/isocubic-sub006/internal/graphics"
	"github.com/netkeep80/isocubic-sub006/internal/grid"
	"github.com/netkeep80/isocubic-sub006/internal/lod"
	"github.com/netkeep80/isocubic-sub006/internal/profiling"
)

func runLoop(window *glfw.Window, manager *grid.Manager, renderer *graphics.Renderer, camera *graphics.OrbitCamera, fpsCap int) {
	cells := manager.Cells()
	scale := manager.CubeScale()
	limiter := newFPSLimiter(fpsCap)

	frames := 0
	lastReport := time.Now()
	var lastStats lod.Statistics

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()

		var update grid.Update
		func() {
			defer profiling.Track("grid.Tick")()
			update = manager.Tick(now, camera.Position())
		}()
		lastStats = update.Stats

		func() {
			defer profiling.Track("renderer.Render")()
			renderer.Render(update, cells, scale, camera)
		}()

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		frames++
		if time.Since(lastReport) >= time.Second {
			fmt.Printf("FPS: %d | quality: %.2f | %s | %s\n",
				frames, manager.Quality(), formatStats(lastStats), profiling.TopN(3))
			frames = 0
			lastReport = time.Now()
		}

		limiter.Wait()
	}
}

// formatStats renders a statistics snapshot as "L0:9 L2:16 (25 cells)".
func formatStats(s lod.Statistics) string {
	levels := make([]lod.Level, 0, len(s.CountsByLevel))
	for l := range s.CountsByLevel {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, fmt.Sprintf("L%d:%d", l, s.CountsByLevel[l]))
	}
	return fmt.Sprintf("%s (%d cells)", strings.Join(parts, " "), s.TotalCells)
}
