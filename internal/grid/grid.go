package grid

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/netkeep80/isocubic-sub006/internal/cube"
	"github.com/netkeep80/isocubic-sub006/internal/lod"
)

// Cell is one static slot in the cube lattice. The cell set is computed once
// from the grid options and never changes for the life of a Manager.
type Cell struct {
	ID            int
	Coord         [3]int
	WorldPosition mgl32.Vec3
}

// Options describe the static topology of a grid.
type Options struct {
	Size      [3]int     `yaml:"size"`
	Spacing   float32    `yaml:"spacing"`
	CubeScale float32    `yaml:"cube_scale"`
	Center    mgl32.Vec3 `yaml:"center"`
}

// Update is the per-tick snapshot handed to collaborators: rebuilt uniform
// maps per cell id, the current level per cell id, and aggregate statistics.
type Update struct {
	Uniforms []cube.UniformMap
	Levels   []lod.Level
	Stats    lod.Statistics
}

// Manager owns a grid instance: its static cell list, the per-cell LOD
// state, and the uniform maps fed to the renderer. All mutation happens in
// Tick; in a multi-threaded deployment Tick is the single writer and
// everything it returns is a snapshot safe to read until the next tick.
type Manager struct {
	opts    Options
	config  cube.Config
	lodCfg  lod.Config
	quality float32
	light   cube.Lighting

	cells    []Cell
	states   []lod.CellState
	uniforms []cube.UniformMap

	onUpdate func(Update)
}

// NewManager builds a grid from a cube configuration and LOD table. The
// configuration is normalized into a private copy (boundary mode defaults
// to smooth); the caller's value is left untouched.
func NewManager(opts Options, config cube.Config, lodCfg lod.Config) (*Manager, error) {
	for i, n := range opts.Size {
		if n < 1 {
			return nil, fmt.Errorf("grid size[%d] must be >= 1, got %d", i, n)
		}
	}
	if opts.CubeScale <= 0 {
		return nil, fmt.Errorf("cube_scale must be positive, got %v", opts.CubeScale)
	}
	if opts.Spacing < 0 {
		return nil, fmt.Errorf("spacing must be non-negative, got %v", opts.Spacing)
	}
	if err := lodCfg.Validate(); err != nil {
		return nil, fmt.Errorf("lod config: %w", err)
	}

	config = config.Clone()
	config.Normalize()

	cells := Layout(opts)
	return &Manager{
		opts:     opts,
		config:   config,
		lodCfg:   lodCfg,
		quality:  1,
		light:    cube.DefaultLighting(),
		cells:    cells,
		states:   make([]lod.CellState, len(cells)),
		uniforms: make([]cube.UniformMap, len(cells)),
	}, nil
}

// Layout computes the static cell list for the given options. Step along
// each axis is cubeScale+spacing and each axis is centered on Center by
// shifting back (size-1)*step/2. Deterministic: identical options always
// yield the identical list, ids in x-major, then y, then z order.
func Layout(opts Options) []Cell {
	step := opts.CubeScale + opts.Spacing
	var start mgl32.Vec3
	for a := 0; a < 3; a++ {
		start[a] = opts.Center[a] - float32(opts.Size[a]-1)*step/2
	}

	cells := make([]Cell, 0, opts.Size[0]*opts.Size[1]*opts.Size[2])
	id := 0
	for ix := 0; ix < opts.Size[0]; ix++ {
		for iy := 0; iy < opts.Size[1]; iy++ {
			for iz := 0; iz < opts.Size[2]; iz++ {
				cells = append(cells, Cell{
					ID:    id,
					Coord: [3]int{ix, iy, iz},
					WorldPosition: mgl32.Vec3{
						start[0] + float32(ix)*step,
						start[1] + float32(iy)*step,
						start[2] + float32(iz)*step,
					},
				})
				id++
			}
		}
	}
	return cells
}

// Cells returns the static cell list. Callers must not modify it.
func (m *Manager) Cells() []Cell { return m.cells }

// CubeScale returns the edge length each cube renders at.
func (m *Manager) CubeScale() float32 { return m.opts.CubeScale }

// Config returns the normalized shared cube configuration.
func (m *Manager) Config() cube.Config { return m.config }

// LODConfig returns the LOD table the manager classifies against.
func (m *Manager) LODConfig() lod.Config { return m.lodCfg }

// Quality returns the current threshold scale factor.
func (m *Manager) Quality() float32 { return m.quality }

// SetQuality installs a device/quality hint: every distance threshold is
// multiplied by q on subsequent evaluations. Values <= 0 reset to 1.
func (m *Manager) SetQuality(q float32) {
	if q <= 0 {
		q = 1
	}
	m.quality = q
}

// SetLighting replaces the light rig encoded into future uniform rebuilds.
func (m *Manager) SetLighting(l cube.Lighting) { m.light = l }

// OnUpdate registers the callback invoked with each tick's snapshot.
func (m *Manager) OnUpdate(fn func(Update)) { m.onUpdate = fn }

// Tick runs one LOD sweep at the given wall time and camera position.
// Each cell is re-classified only once its update interval has elapsed;
// uniform maps are rebuilt only when a cell's level actually changes.
// Returns the snapshot also delivered to the OnUpdate callback.
func (m *Manager) Tick(now time.Time, cameraPos mgl32.Vec3) Update {
	interval := m.lodCfg.UpdateIntervalSeconds

	for i := range m.cells {
		st := &m.states[i]
		if !st.ShouldEvaluate(now, interval) {
			continue
		}

		dist := cameraPos.Sub(m.cells[i].WorldPosition).Len()
		level := lod.Classify(dist, st.Previous(), m.lodCfg, m.quality)

		if !st.Evaluated || level != st.Level {
			settings := m.lodCfg.SettingsFor(level)
			m.uniforms[i] = cube.BuildUniforms(m.config, cube.BuildOptions{
				Level:        &settings,
				GridPosition: m.cells[i].WorldPosition,
				Light:        &m.light,
			})
		}
		st.Record(level, now)
	}

	levels := make([]lod.Level, len(m.states))
	for i := range m.states {
		levels[i] = m.states[i].Previous()
	}

	update := Update{
		Uniforms: m.uniforms,
		Levels:   levels,
		Stats:    lod.Aggregate(levels, now),
	}
	if m.onUpdate != nil {
		m.onUpdate(update)
	}
	return update
}
