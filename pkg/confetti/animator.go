package confetti

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"
)

// DefaultCount 是一次爆发默认生成的粒子数
const DefaultCount = 150

// Animator 管理一次彩纸爆发的逐帧模拟
//
// 同一时间最多只有一次爆发在播放：活动期间的 Start 调用被直接忽略，
// 既不排队也不合并。所有方法都必须在同一个协作式执行上下文中调用
// （ebiten 的 Update 回调），因此不需要加锁。
type Animator struct {
	surface   Surface
	viewport  Viewport
	scheduler Scheduler
	rng       RandomSource
	palette   []color.RGBA

	defaultCount int

	particles []Particle
	active    bool
	frame     FrameID // 待执行的下一帧，0 表示没有
	burst     uint64  // 每次 Start/Stop 递增，使过期的帧回调失效
	frames    int     // 当前爆发已模拟的帧数
	ignored   int     // 当前爆发期间被忽略的 Start 次数
}

// Option 配置 Animator
type Option func(*Animator)

// WithRandom 指定随机数来源
func WithRandom(rng RandomSource) Option {
	return func(a *Animator) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithPalette 指定调色板，空调色板被忽略
func WithPalette(palette []color.RGBA) Option {
	return func(a *Animator) {
		if len(palette) > 0 {
			a.palette = palette
		}
	}
}

// WithDefaultCount 指定 StartDefault 使用的粒子数
func WithDefaultCount(count int) Option {
	return func(a *Animator) {
		if count > 0 {
			a.defaultCount = count
		}
	}
}

// New 创建 Animator 并按视口尺寸设置表面大小
//
// 表面、视口和调度器都是必需的，缺少任何一个返回错误。
func New(surface Surface, viewport Viewport, scheduler Scheduler, opts ...Option) (*Animator, error) {
	if surface == nil {
		return nil, fmt.Errorf("confetti: drawing surface is required")
	}
	if viewport == nil {
		return nil, fmt.Errorf("confetti: viewport is required")
	}
	if scheduler == nil {
		return nil, fmt.Errorf("confetti: scheduler is required")
	}

	a := &Animator{
		surface:      surface,
		viewport:     viewport,
		scheduler:    scheduler,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		palette:      DefaultPalette(),
		defaultCount: DefaultCount,
		particles:    make([]Particle, 0, DefaultCount),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Resize()
	return a, nil
}

// Resize 将表面尺寸同步为当前视口尺寸
// 必须在每次视口尺寸变化时调用
func (a *Animator) Resize() {
	width, height := a.viewport.Size()
	a.surface.SetSize(width, height)
}

// Active 返回是否有爆发正在播放
func (a *Animator) Active() bool {
	return a.active
}

// Particles 返回当前存活粒子的副本
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// CreateParticle 在 (x, y) 生成一个随机粒子
func (a *Animator) CreateParticle(x, y float64) Particle {
	return Particle{
		X:             x,
		Y:             y,
		VX:            a.uniform(MinVelocityX, MaxVelocityX),
		VY:            a.uniform(MinVelocityY, MaxVelocityY),
		Color:         a.pickColor(),
		Size:          a.uniform(MinSize, MaxSize),
		Rotation:      a.rng.Float64() * 2 * math.Pi,
		RotationSpeed: a.uniform(-MaxRotationSpeed, MaxRotationSpeed),
		Gravity:       Gravity,
		Opacity:       1,
		Life:          MinLife + int(a.rng.Float64()*float64(MaxLife-MinLife)),
	}
}

// CreateRandomParticle 在表面范围内的随机位置生成粒子
// 调用方没有给出原点时使用
func (a *Animator) CreateRandomParticle() Particle {
	x := a.rng.Float64() * float64(a.surface.Width())
	y := a.rng.Float64() * float64(a.surface.Height())
	return a.CreateParticle(x, y)
}

// Start 在 (x, y) 发射 count 个粒子并开始帧循环
//
// 已有爆发在播放时直接返回。count <= 0 会产生一次空爆发，
// 在下一帧立即结束。
func (a *Animator) Start(x, y float64, count int) {
	if a.active {
		// 每次爆发只记录第一次被忽略的调用
		a.ignored++
		if a.ignored == 1 {
			log.Printf("[Animator] Burst already running, ignoring start at (%.0f, %.0f)", x, y)
		}
		return
	}
	if count < 0 {
		count = 0
	}

	a.active = true
	a.burst++
	a.frames = 0
	a.ignored = 0

	a.particles = a.particles[:0]
	for i := 0; i < count; i++ {
		a.particles = append(a.particles, a.CreateParticle(x, y))
	}

	log.Printf("[Animator] Burst started at (%.0f, %.0f) with %d particles", x, y, count)
	a.scheduleNext()
}

// StartDefault 以默认粒子数发射
func (a *Animator) StartDefault(x, y float64) {
	a.Start(x, y, a.defaultCount)
}

// Stop 立即结束当前爆发并清空表面，可重复调用
func (a *Animator) Stop() {
	if a.frame != 0 {
		a.scheduler.CancelFrame(a.frame)
		a.frame = 0
	}
	if a.active {
		log.Printf("[Animator] Burst stopped after %d frames", a.frames)
	}
	a.active = false
	a.burst++
	a.particles = a.particles[:0]
	a.clearSurface()
}

func (a *Animator) scheduleNext() {
	burst := a.burst
	a.frame = a.scheduler.RequestFrame(func() {
		// 已被 Stop 或新的爆发取代的回调不再执行
		if burst != a.burst || !a.active {
			return
		}
		a.step()
	})
}

// step 执行一帧：清屏、推进、绘制、移除过期粒子、调度下一帧
func (a *Animator) step() {
	a.frame = 0
	a.frames++
	a.clearSurface()

	for i := range a.particles {
		a.particles[i].Update()
	}

	for i := range a.particles {
		p := &a.particles[i]
		if !p.Alive() {
			continue
		}
		a.surface.FillRect(p.Bounds())
		if hl, ok := p.Highlight(); ok {
			a.surface.FillRect(hl)
		}
	}

	live := a.particles[:0]
	for _, p := range a.particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	a.particles = live

	if len(a.particles) > 0 {
		a.scheduleNext()
		return
	}

	a.active = false
	a.clearSurface()
	log.Printf("[Animator] Burst finished after %d frames (%d starts ignored)", a.frames, a.ignored)
}

func (a *Animator) clearSurface() {
	a.surface.ClearRect(0, 0, float64(a.surface.Width()), float64(a.surface.Height()))
}

func (a *Animator) uniform(lo, hi float64) float64 {
	return lo + a.rng.Float64()*(hi-lo)
}

func (a *Animator) pickColor() color.RGBA {
	idx := int(a.rng.Float64() * float64(len(a.palette)))
	if idx >= len(a.palette) {
		idx = len(a.palette) - 1
	}
	return a.palette[idx]
}
