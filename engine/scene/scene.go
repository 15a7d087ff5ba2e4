package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/camera"
	"github.com/Carmen-Shannon/oxy-scenes/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scenes/engine/light"
	"github.com/Carmen-Shannon/oxy-scenes/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/Carmen-Shannon/oxy-scenes/engine/renderer"
)

// Frame is the per-frame snapshot passed to every object's build function.
type Frame = mesh.Frame

// ErrNoRenderer is returned by Prepare and DrawCalls when the scene has no renderer attached.
var ErrNoRenderer = errors.New("scene has no renderer")

// Layout is one selectable arrangement of objects. A scene shows exactly one
// layout at a time.
type Layout struct {
	Name    string
	Objects []game_object.GameObject
}

// Scene manages a set of named layouts, a camera, a light and a renderer.
// Each frame the active layout and the overlay objects are rebuilt from
// scratch, in parallel on a worker pool, and merged in object order into one
// triangle model and one line model.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Light returns the scene's light, or nil when the scene is unlit.
	Light() light.Light

	// SetLight replaces the scene's light. A nil light renders unlit.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// AddLayout appends a layout to the scene.
	//
	// Parameters:
	//   - layout: the layout to append
	//
	// Returns:
	//   - int: the index of the new layout
	AddLayout(layout Layout) int

	// Layouts returns a copy of the scene's layouts.
	Layouts() []Layout

	// SetOverlay replaces the objects built every frame regardless of the
	// active layout (axes, light marker, polylines).
	//
	// Parameters:
	//   - objects: the overlay objects in draw order
	SetOverlay(objects ...game_object.GameObject)

	// Mode returns the index of the active layout.
	Mode() int

	// ModeName returns the name of the active layout, or "" when the scene has no layouts.
	ModeName() string

	// SetMode selects the active layout. The index wraps modulo the number of
	// layouts, negative values included.
	//
	// Parameters:
	//   - i: the requested layout index
	//
	// Returns:
	//   - int: the resulting layout index
	SetMode(i int) int

	// CycleMode moves the active layout by delta with wrap-around.
	//
	// Parameters:
	//   - delta: the number of layouts to move (negative moves backwards)
	//
	// Returns:
	//   - int: the resulting layout index
	CycleMode(delta int) int

	// Build builds the overlay and every enabled object of the active layout
	// for the given frame. Objects are built concurrently, each into its own
	// mesh arena, and merged in order, so the output is identical for
	// identical inputs.
	//
	// Parameters:
	//   - f: the frame snapshot
	//
	// Returns:
	//   - model.Model: the merged triangle list
	//   - model.Model: the merged line list
	Build(f Frame) (model.Model, model.Model)

	// Prepare builds the frame, uploads both meshes and writes the camera and
	// light uniform. Must be called before the renderer's BeginFrame.
	//
	// Parameters:
	//   - f: the frame snapshot
	//
	// Returns:
	//   - error: ErrNoRenderer or the wrapped upload error
	Prepare(f Frame) error

	// DrawCalls issues the lit triangle draw and the unlit line draw uploaded by
	// the last Prepare. Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: ErrNoRenderer or the renderer's draw error
	DrawCalls() error

	// Close stops the scene's worker pool.
	Close()
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name    string
	active  bool
	cam     camera.Camera
	lgt     light.Light
	r       renderer.Renderer
	layouts []Layout
	overlay []game_object.GameObject
	mode    int

	// buildMu serializes Build so the per-slot arenas are never shared.
	buildMu  sync.Mutex
	builders []mesh.Builder
	capacity int

	// buildPool runs one task per object. Workers persist across frames.
	buildPool    worker.DynamicWorkerPool
	buildWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. The
// renderer may be nil for scenes that are only built, never drawn.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		cam:          cam,
		r:            r,
		buildWorkers: max(runtime.NumCPU()-1, 1),
		capacity:     1024,
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithBuildWorkers can override the default.
	s.buildPool = worker.NewDynamicWorkerPool(s.buildWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lgt
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lgt = l
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) AddLayout(layout Layout) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts = append(s.layouts, layout)
	return len(s.layouts) - 1
}

func (s *scene) Layouts() []Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Layout, len(s.layouts))
	copy(out, s.layouts)
	return out
}

func (s *scene) SetOverlay(objects ...game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = append([]game_object.GameObject(nil), objects...)
}

func (s *scene) Mode() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *scene) ModeName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.layouts) == 0 {
		return ""
	}
	return s.layouts[s.mode].Name
}

func (s *scene) SetMode(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = common.WrapIndex(i, len(s.layouts))
	return s.mode
}

func (s *scene) CycleMode(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = common.WrapIndex(s.mode+delta, len(s.layouts))
	return s.mode
}

// objects returns the overlay followed by the enabled objects of the active layout.
func (s *scene) objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objs := make([]game_object.GameObject, 0, len(s.overlay)+8)
	for _, o := range s.overlay {
		if o.Enabled() {
			objs = append(objs, o)
		}
	}
	if len(s.layouts) > 0 {
		for _, o := range s.layouts[s.mode].Objects {
			if o.Enabled() {
				objs = append(objs, o)
			}
		}
	}
	return objs
}

func (s *scene) Build(f Frame) (model.Model, model.Model) {
	objs := s.objects()
	name := s.Name()

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	for len(s.builders) < len(objs) {
		s.builders = append(s.builders, mesh.NewBuilder(
			mesh.WithName(fmt.Sprintf("%s/%d", name, len(s.builders))),
			mesh.WithCapacity(s.capacity),
		))
	}

	var wg sync.WaitGroup
	for i, obj := range objs {
		wg.Add(1)
		b := s.builders[i]
		s.buildPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				b.Reset()
				obj.Build(b, f)
				return nil, nil
			},
		})
	}
	wg.Wait()

	tris := model.NewModel(model.WithName(name), model.WithTopology(model.TopologyTriangles))
	lines := model.NewModel(model.WithName(name), model.WithTopology(model.TopologyLines))
	for i := range objs {
		b := s.builders[i]
		if b.TriangleCount() > 0 {
			tris.Merge(b.Triangles())
		}
		if b.LineCount() > 0 {
			lines.Merge(b.Lines())
		}
	}
	return tris, lines
}

// meshKeys returns the renderer slots for the scene's triangle and line meshes.
func meshKeys(name string) (string, string) {
	return name + "/triangles", name + "/lines"
}

func (s *scene) Prepare(f Frame) error {
	s.mu.RLock()
	r, cam, lgt, name := s.r, s.cam, s.lgt, s.name
	s.mu.RUnlock()
	if r == nil {
		return ErrNoRenderer
	}

	tris, lines := s.Build(f)

	frame := renderer.GPUFrame{Camera: cam.GPU()}
	if lgt != nil {
		frame.Light = lgt.GPU()
	}
	r.WriteFrame(&frame)

	triKey, lineKey := meshKeys(name)
	if err := r.UploadMesh(triKey, tris); err != nil {
		return err
	}
	return r.UploadMesh(lineKey, lines)
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	r, name := s.r, s.name
	s.mu.RUnlock()
	if r == nil {
		return ErrNoRenderer
	}

	triKey, lineKey := meshKeys(name)
	if err := r.Draw(triKey); err != nil {
		return fmt.Errorf("draw %s: %w", triKey, err)
	}
	if err := r.Draw(lineKey); err != nil {
		return fmt.Errorf("draw %s: %w", lineKey, err)
	}
	return nil
}

func (s *scene) Close() {
	s.buildPool.Stop()
}
