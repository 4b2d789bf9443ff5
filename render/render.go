// Package render 是和渲染端之间的边界：每帧把臂段、关节球的位姿交出去
package render

import (
	"context"
	"errors"

	"robotarm/arm"
)

// Sink 接收每一帧的位姿并负责画出来（终端、JSON 流、浏览器……）
type Sink interface {
	Draw(f arm.Frame) error
}

// SinkFunc 让普通函数也能当 Sink 用
type SinkFunc func(f arm.Frame) error

func (fn SinkFunc) Draw(f arm.Frame) error { return fn(f) }

// Run 驱动循环：Tick 一次、画一次，直到动画结束、达到 maxFrames（<=0 表示不限）
// 或 ctx 被取消。返回已经画出的帧数。
// 求解或绘制出错时立即停止并返回错误。
func Run(ctx context.Context, a *arm.Animator, sink Sink, maxFrames int) (int, error) {
	n := 0
	for !a.Done() {
		if maxFrames > 0 && n >= maxFrames {
			break
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		f, err := a.Tick()
		if errors.Is(err, arm.ErrDone) {
			break
		}
		if err != nil {
			return n, err
		}
		if err := sink.Draw(f); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
