package arm

import "github.com/go-gl/mathgl/mgl64"

// Segment 表示机械臂的一节刚性臂段
type Segment struct {
	// Length：臂段长度，必须为正数，参与运动学计算
	Length float64

	// Width、Height：截面尺寸，只用于显示
	Width  float64
	Height float64

	// Color：显示颜色（颜色名），不参与计算
	Color string
}

// Hinge 表示相邻两节臂段之间的关节标记（球），本身不参与运动学计算
type Hinge struct {
	Radius float64
	Color  string
}

// Chain 一条串联机械臂：基座 + 按顺序排列的臂段
// 第 0 节连在固定基座上，构造之后节数不再变化
type Chain struct {
	Base     mgl64.Vec3
	Segments []Segment
	Hinge    Hinge
}

// NewChain 构造机械臂并检查每节长度是否合法
func NewChain(base mgl64.Vec3, segments ...Segment) (*Chain, error) {
	if err := checkChain(segments, base); err != nil {
		return nil, err
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return &Chain{
		Base:     base,
		Segments: segs,
	}, nil
}

// Len 返回臂段数
func (c *Chain) Len() int { return len(c.Segments) }

// Lengths 返回各节长度
func (c *Chain) Lengths() []float64 {
	out := make([]float64, len(c.Segments))
	for i, s := range c.Segments {
		out[i] = s.Length
	}
	return out
}

// Reach 所有臂段长度之和，即末端离基座的最远距离
func (c *Chain) Reach() float64 {
	var sum float64
	for _, s := range c.Segments {
		sum += s.Length
	}
	return sum
}
