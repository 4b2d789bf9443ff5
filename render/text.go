package render

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/muesli/termenv"

	"robotarm/arm"
)

// 颜色名 → 终端颜色
var colorHex = map[string]string{
	"red":    "#ff0000",
	"green":  "#00c000",
	"blue":   "#3060ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"white":  "#ffffff",
	"grey":   "#808080",
	"gray":   "#808080",
	"black":  "#000000",
}

// TextSink 每帧打印一张表：每节臂段一行，每个关节球一行
type TextSink struct {
	out   *termenv.Output
	chain *arm.Chain
}

// NewTextSink 输出到 w；终端不支持颜色时自动降级成纯文本
func NewTextSink(w io.Writer, chain *arm.Chain, opts ...termenv.OutputOption) *TextSink {
	return &TextSink{
		out:   termenv.NewOutput(w, opts...),
		chain: chain,
	}
}

func (s *TextSink) paint(text, color string) string {
	hex, ok := colorHex[color]
	if !ok {
		return text
	}
	return s.out.String(text).Foreground(s.out.Color(hex)).String()
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%7.3f, %7.3f, %7.3f)", v.X(), v.Y(), v.Z())
}

func (s *TextSink) Draw(f arm.Frame) error {
	if _, err := fmt.Fprintf(s.out, "frame %d\n", f.Index); err != nil {
		return err
	}
	for i, p := range f.Poses {
		color := ""
		if s.chain != nil && i < len(s.chain.Segments) {
			color = s.chain.Segments[i].Color
		}
		label := s.paint(fmt.Sprintf("segment %d", i), color)
		_, err := fmt.Fprintf(s.out, "  %s  center %s  end %s  angle %8.4f\n",
			label, fmtVec(p.Center), fmtVec(p.End), p.Angle)
		if err != nil {
			return err
		}
	}
	hingeColor := ""
	if s.chain != nil {
		hingeColor = s.chain.Hinge.Color
	}
	for i, h := range f.Hinges {
		label := s.paint(fmt.Sprintf("hinge   %d", i), hingeColor)
		if _, err := fmt.Fprintf(s.out, "  %s  at     %s\n", label, fmtVec(h)); err != nil {
			return err
		}
	}
	return nil
}
