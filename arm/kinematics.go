package arm

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var xAxis = mgl64.Vec3{1, 0, 0}

// RotZ 绕 z 轴旋转 theta（弧度）
//
//	[cos -sin 0]
//	[sin  cos 0]
//	[ 0    0  1]
func RotZ(theta float64) mgl64.Mat3 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return mgl64.Mat3FromRows(
		mgl64.Vec3{c, -s, 0},
		mgl64.Vec3{s, c, 0},
		mgl64.Vec3{0, 0, 1},
	)
}

// Pose 某一节臂段在世界坐标系下的位姿，每帧重新计算，不保存
type Pose struct {
	// Angle：从基座累加到本节的 z 轴转角（弧度），不做归一化
	Angle float64

	// Rotation：累积旋转矩阵 R0·R1·…·Ri
	Rotation mgl64.Mat3

	// Start：本节起点（上一节的终点，第 0 节为基座）
	Start mgl64.Vec3
	// Center：本节中心，显示时 Box 放在这里
	Center mgl64.Vec3
	// End：本节终点
	End mgl64.Vec3
}

// Quat 把朝向转成四元数，给用四元数的渲染器用
func (p Pose) Quat() mgl64.Quat {
	return mgl64.Mat4ToQuat(p.Rotation.Mat4())
}

// Solution 一次正运动学的结果
type Solution struct {
	Poses []Pose

	// Hinges[i] 在第 i 节和第 i+1 节的交界处，共 n-1 个
	Hinges []mgl64.Vec3
}

// Tip 末端执行器位置（最后一节的终点）
func (s Solution) Tip() mgl64.Vec3 {
	if len(s.Poses) == 0 {
		return mgl64.Vec3{}
	}
	return s.Poses[len(s.Poses)-1].End
}

// Solve 正运动学：给定各节长度和关节角，算出每节的位姿和关节球位置
//
// 关节角是相对上一节的角度，旋转按 prev·local 的顺序累乘，
// 所以前面关节的转动会带动后面所有臂段，反之不会。
// 臂段位置取中心点：Center = cursor + R·(L/2, 0, 0)。
// 不修改输入，出错时不做任何部分计算。
func Solve(segments []Segment, jointAngles []float64, base mgl64.Vec3) (Solution, error) {
	if err := checkChain(segments, base); err != nil {
		return Solution{}, err
	}
	if err := checkAngles(len(segments), jointAngles); err != nil {
		return Solution{}, err
	}

	n := len(segments)
	sol := Solution{
		Poses:  make([]Pose, n),
		Hinges: make([]mgl64.Vec3, n-1),
	}

	R := mgl64.Ident3()
	angle := 0.0
	cursor := base

	for i := 0; i < n; i++ {
		theta := jointAngles[i]
		R = R.Mul3(RotZ(theta))
		angle += theta

		L := segments[i].Length
		dir := R.Mul3x1(xAxis)

		p := Pose{
			Angle:    angle,
			Rotation: R,
			Start:    cursor,
			Center:   cursor.Add(dir.Mul(L * 0.5)),
			End:      cursor.Add(dir.Mul(L)),
		}
		sol.Poses[i] = p

		// 游标移到本节末端
		cursor = p.End

		if i < n-1 {
			sol.Hinges[i] = cursor
		}
	}

	return sol, nil
}

// Solve 用这条机械臂的参数做正运动学
func (c *Chain) Solve(jointAngles []float64) (Solution, error) {
	return Solve(c.Segments, jointAngles, c.Base)
}
