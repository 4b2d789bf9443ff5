package arm

import "github.com/go-gl/mathgl/mgl64"

// Joints 返回从基座到末端的所有关节点：base, hinge0, …, hinge(n-2), tip
// 共 n+1 个点，相邻两点之间就是一节臂段
func (s Solution) Joints() []mgl64.Vec3 {
	n := len(s.Poses)
	if n == 0 {
		return nil
	}
	out := make([]mgl64.Vec3, 0, n+1)
	out = append(out, s.Poses[0].Start)
	out = append(out, s.Hinges...)
	out = append(out, s.Poses[n-1].End)
	return out
}

// TipXY 末端在 xy 平面上的坐标，所有关节都绕 z 轴转，z 不变
func (s Solution) TipXY() (x, y float64) {
	t := s.Tip()
	return t.X(), t.Y()
}
