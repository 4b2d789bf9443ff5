package arm

import (
	"errors"
	"fmt"
	"math"
)

// Motion 关节角随时间变化的方式
type Motion int

const (
	// MotionSweep 所有关节同时从 From 线性扫到 To，共 Frames 帧（绝对角）
	MotionSweep Motion = iota
	// MotionIncrement 每个 tick 给每个关节加 Delta（增量），没有终点
	MotionIncrement
)

func (m Motion) String() string {
	switch m {
	case MotionSweep:
		return "sweep"
	case MotionIncrement:
		return "increment"
	}
	return fmt.Sprintf("Motion(%d)", int(m))
}

// ParseMotion 把 "sweep" / "increment" 转成 Motion，空串按 sweep 处理
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "", "sweep":
		return MotionSweep, nil
	case "increment":
		return MotionIncrement, nil
	}
	return 0, fmt.Errorf("%w: unknown motion %q", ErrConfiguration, s)
}

// ErrDone 扫描动画已经播完，再调用 Tick 会返回它
var ErrDone = errors.New("arm: animation finished")

// 默认参数：扫 0 → π/8，360 帧；增量每次 2°
const (
	DefaultSweepTo     = math.Pi / 8
	DefaultSweepFrames = 360
	DefaultDelta       = 2 * math.Pi / 180
)

// AnimatorOptions 动画参数，零值字段用默认值
type AnimatorOptions struct {
	Motion Motion

	// sweep
	From   float64
	To     float64
	Frames int

	// increment
	Delta float64

	// Offset：加到每节累积角上的常量。关节角是相对角，
	// 所以只需加在第 0 个关节上，后面各节都会继承一次
	Offset float64

	// Initial：初始关节角，nil 时全为 0
	Initial []float64
}

// Frame 一个 tick 的输出，交给渲染端去画
type Frame struct {
	Index  int
	Angles []float64
	Solution
}

// Animator 动画状态，由驱动循环持有，每次 Tick 前进一步并求解
// 不依赖定时器或键盘事件，谁来调用 Tick 都可以
type Animator struct {
	chain *Chain
	opts  AnimatorOptions

	angles []float64
	frame  int
}

// NewAnimator 检查参数并创建动画状态
func NewAnimator(chain *Chain, opts AnimatorOptions) (*Animator, error) {
	if chain == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrConfiguration)
	}
	if err := checkChain(chain.Segments, chain.Base); err != nil {
		return nil, err
	}
	n := chain.Len()

	switch opts.Motion {
	case MotionSweep:
		if opts.Frames == 0 {
			opts.Frames = DefaultSweepFrames
		}
		if opts.From == 0 && opts.To == 0 {
			opts.To = DefaultSweepTo
		}
		if opts.Frames < 0 {
			return nil, fmt.Errorf("%w: negative frame count %d", ErrConfiguration, opts.Frames)
		}
	case MotionIncrement:
		if opts.Delta == 0 {
			opts.Delta = DefaultDelta
		}
	default:
		return nil, fmt.Errorf("%w: unknown motion %v", ErrConfiguration, opts.Motion)
	}

	for _, x := range []float64{opts.From, opts.To, opts.Delta, opts.Offset} {
		if !finite(x) {
			return nil, fmt.Errorf("%w: animation parameter is %v", ErrNumeric, x)
		}
	}

	if opts.Initial == nil {
		opts.Initial = make([]float64, n)
	} else {
		if err := checkAngles(n, opts.Initial); err != nil {
			return nil, err
		}
		opts.Initial = append([]float64(nil), opts.Initial...)
	}

	a := &Animator{chain: chain, opts: opts}
	a.Reset()
	return a, nil
}

// Reset 回到第 0 帧和初始关节角
func (a *Animator) Reset() {
	a.frame = 0
	a.angles = append(a.angles[:0], a.opts.Initial...)
}

// Done 扫描是否播完；增量模式永远不会结束
func (a *Animator) Done() bool {
	return a.opts.Motion == MotionSweep && a.frame >= a.opts.Frames
}

// Frame 下一次 Tick 的帧号
func (a *Animator) Frame() int { return a.frame }

// Angles 当前关节角的拷贝（不含 Offset）
func (a *Animator) Angles() []float64 {
	return append([]float64(nil), a.angles...)
}

// Chain 返回动画驱动的机械臂
func (a *Animator) Chain() *Chain { return a.chain }

// sweepAngle linspace(From, To, Frames) 的第 k 个值
func (a *Animator) sweepAngle(k int) float64 {
	o := a.opts
	if o.Frames <= 1 {
		return o.From
	}
	return o.From + (o.To-o.From)*float64(k)/float64(o.Frames-1)
}

// Tick 更新关节角，然后求解一次
func (a *Animator) Tick() (Frame, error) {
	if a.Done() {
		return Frame{}, ErrDone
	}

	switch a.opts.Motion {
	case MotionSweep:
		theta := a.sweepAngle(a.frame)
		for i := range a.angles {
			a.angles[i] = a.opts.Initial[i] + theta
		}
	case MotionIncrement:
		for i := range a.angles {
			a.angles[i] += a.opts.Delta
		}
	}

	used := append([]float64(nil), a.angles...)
	used[0] += a.opts.Offset

	sol, err := a.chain.Solve(used)
	if err != nil {
		return Frame{}, err
	}

	f := Frame{Index: a.frame, Angles: used, Solution: sol}
	a.frame++
	return f, nil
}
