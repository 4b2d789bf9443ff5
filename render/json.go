package render

import (
	"encoding/json"
	"io"

	"robotarm/arm"
)

// SegmentState 一节臂段交给外部 3D 程序的数据
type SegmentState struct {
	Start  [3]float64 `json:"start"`
	Center [3]float64 `json:"center"`
	End    [3]float64 `json:"end"`
	// Quat：[w, x, y, z]
	Quat  [4]float64 `json:"quat"`
	Angle float64    `json:"angle"`
}

// FrameState 一帧的 JSON 表示
type FrameState struct {
	Frame    int            `json:"frame"`
	Angles   []float64      `json:"angles"`
	Segments []SegmentState `json:"segments"`
	Hinges   [][3]float64   `json:"hinges"`
	Tip      [3]float64     `json:"tip"`
}

// NewFrameState 把 arm.Frame 转成可以直接序列化的结构
func NewFrameState(f arm.Frame) FrameState {
	st := FrameState{
		Frame:    f.Index,
		Angles:   f.Angles,
		Segments: make([]SegmentState, len(f.Poses)),
		Hinges:   make([][3]float64, len(f.Hinges)),
		Tip:      f.Tip(),
	}
	for i, p := range f.Poses {
		q := p.Quat()
		st.Segments[i] = SegmentState{
			Start:  p.Start,
			Center: p.Center,
			End:    p.End,
			Quat:   [4]float64{q.W, q.X(), q.Y(), q.Z()},
			Angle:  p.Angle,
		}
	}
	for i, h := range f.Hinges {
		st.Hinges[i] = h
	}
	return st
}

// JSONSink 每帧写一行 JSON（JSON Lines）
type JSONSink struct {
	enc *json.Encoder
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

func (s *JSONSink) Draw(f arm.Frame) error {
	return s.enc.Encode(NewFrameState(f))
}
