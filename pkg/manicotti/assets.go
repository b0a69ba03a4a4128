package manicotti

import (
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// Material is a resolved texture asset. A nil Material on a widget means
// resolution failed at setup; the slot is still constructed.
type Material struct {
	Name    string
	Texture *sdl.Texture
	W, H    int32
}

// Shader is an opaque handle to a named shader program. The SDL renderer
// has no programmable stage, so the handle only carries the name for hosts
// with GL backends to resolve; a nil shader on a widget renders nothing,
// which is the visible failure signal for a bad definition.
type Shader struct {
	Name string
}

// AssetManager resolves and preloads the materials and shaders a menu
// definition references. Find returns nil for anything unresolved; Load is
// a side-effecting preload with no return value.
type AssetManager interface {
	FindMaterial(name string) *Material
	FindShader(name string) *Shader
	LoadMaterial(name string)
	LoadShader(name string)
}

const defaultMaterialCacheSize = 64

// materialCache is an LRU cache of loaded materials keyed by asset name.
type materialCache struct {
	materials map[string]*Material
	order     []string // insertion order for LRU eviction
	maxSize   int
}

func newMaterialCache(maxSize int) *materialCache {
	return &materialCache{
		materials: make(map[string]*Material),
		order:     make([]string, 0, maxSize),
		maxSize:   maxSize,
	}
}

func (c *materialCache) get(key string) *Material {
	if m, exists := c.materials[key]; exists {
		c.moveToEnd(key)
		return m
	}
	return nil
}

func (c *materialCache) set(key string, m *Material) {
	if _, exists := c.materials[key]; exists {
		c.materials[key] = m
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.materials[key] = m
	c.order = append(c.order, key)
}

func (c *materialCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *materialCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if m, exists := c.materials[oldest]; exists {
		if m.Texture != nil {
			m.Texture.Destroy()
		}
		delete(c.materials, oldest)
	}
}

func (c *materialCache) destroy() {
	for _, m := range c.materials {
		if m.Texture != nil {
			m.Texture.Destroy()
		}
	}
	c.materials = make(map[string]*Material)
	c.order = c.order[:0]
}

// MaterialManager is the SDL-backed AssetManager. Asset names are paths
// relative to the configured root; PNG/JPG/WebP load through SDL_image and
// .svg files are rasterized. Shaders are a name registry: LoadShader
// registers a handle, FindShader misses return nil.
type MaterialManager struct {
	root      string
	renderer  *sdl.Renderer
	materials *materialCache
	shaders   map[string]*Shader
}

// NewMaterialManager creates a manager loading assets from root into
// textures for the given renderer.
func NewMaterialManager(root string, renderer *sdl.Renderer) *MaterialManager {
	return &MaterialManager{
		root:      root,
		renderer:  renderer,
		materials: newMaterialCache(defaultMaterialCacheSize),
		shaders:   make(map[string]*Shader),
	}
}

// FindMaterial returns the material for name, loading it on a cache miss.
// Returns nil if the asset cannot be loaded.
func (m *MaterialManager) FindMaterial(name string) *Material {
	if name == "" {
		return nil
	}
	if cached := m.materials.get(name); cached != nil {
		return cached
	}

	loaded := m.loadTexture(name)
	if loaded == nil {
		return nil
	}
	m.materials.set(name, loaded)
	return loaded
}

// LoadMaterial eagerly loads name into the cache, front-loading the I/O
// before Menu.Setup runs.
func (m *MaterialManager) LoadMaterial(name string) {
	m.FindMaterial(name)
}

// FindShader returns the registered handle for name, or nil if it was
// never loaded.
func (m *MaterialManager) FindShader(name string) *Shader {
	if name == "" {
		return nil
	}
	return m.shaders[name]
}

// LoadShader registers a shader handle for name.
func (m *MaterialManager) LoadShader(name string) {
	if name == "" {
		return
	}
	if _, exists := m.shaders[name]; !exists {
		m.shaders[name] = &Shader{Name: name}
	}
}

// Destroy releases every cached texture.
func (m *MaterialManager) Destroy() {
	m.materials.destroy()
}

func (m *MaterialManager) loadTexture(name string) *Material {
	path := filepath.Join(m.root, name)

	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return m.loadSVGTexture(name, path)
	}

	texture, err := img.LoadTexture(m.renderer, path)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load material", "name", name, "error", err)
		return nil
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		texture.Destroy()
		return nil
	}
	return &Material{Name: name, Texture: texture, W: w, H: h}
}

func (m *MaterialManager) loadSVGTexture(name, path string) *Material {
	rgba, err := internal.RasterizeSVG(path, 0, 0)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to rasterize material", "name", name, "error", err)
		return nil
	}

	bounds := rgba.Bounds()
	w, h := int32(bounds.Dx()), int32(bounds.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to wrap rasterized material", "name", name, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := m.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to upload material", "name", name, "error", err)
		return nil
	}
	return &Material{Name: name, Texture: texture, W: w, H: h}
}
