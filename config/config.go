// Package config 读取机械臂和动画的配置（TOML / YAML / JSON）
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"robotarm/arm"
)

// Palette 默认颜色，臂段数多于颜色数时循环使用
var Palette = []string{"red", "green", "blue", "yellow"}

// Segment 一节臂段的配置，字段缺省时用默认值
type Segment struct {
	Length float64 `toml:"length" yaml:"length" json:"length"`
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
	Color  string  `toml:"color" yaml:"color" json:"color"`
}

// Base 固定基座的 Box，只用于显示
type Base struct {
	Position []float64 `toml:"position" yaml:"position" json:"position"`
	Size     []float64 `toml:"size" yaml:"size" json:"size"`
	Color    string    `toml:"color" yaml:"color" json:"color"`
}

// Hinge 关节球的显示参数
type Hinge struct {
	Radius float64 `toml:"radius" yaml:"radius" json:"radius"`
	Color  string  `toml:"color" yaml:"color" json:"color"`
}

// Animation 动画参数，角度单位为弧度
type Animation struct {
	Motion  string    `toml:"motion" yaml:"motion" json:"motion"`
	From    float64   `toml:"from" yaml:"from" json:"from"`
	To      float64   `toml:"to" yaml:"to" json:"to"`
	Frames  int       `toml:"frames" yaml:"frames" json:"frames"`
	Delta   float64   `toml:"delta" yaml:"delta" json:"delta"`
	Offset  float64   `toml:"offset" yaml:"offset" json:"offset"`
	Initial []float64 `toml:"initial" yaml:"initial" json:"initial"`
}

// Arm 整个配置文件
type Arm struct {
	// Links：臂段数，0 时取 len(Segments)，两者都为 0 时取 4；
	// 不能比 Segments 少
	Links int `toml:"links" yaml:"links" json:"links"`

	// Origin：第 0 节的起点，缺省为原点。基座 Box 只用于显示，不影响它
	Origin []float64 `toml:"origin" yaml:"origin" json:"origin"`

	Base      Base      `toml:"base" yaml:"base" json:"base"`
	Hinge     Hinge     `toml:"hinge" yaml:"hinge" json:"hinge"`
	Segments  []Segment `toml:"segments" yaml:"segments" json:"segments"`
	Animation Animation `toml:"animation" yaml:"animation" json:"animation"`
}

// Default 原始的四节机械臂：每节长 1，截面 0.2×0.2，红绿蓝黄
func Default() Arm {
	a := Arm{Links: len(Palette)}
	_ = a.fill() // 空配置不会出错
	return a
}

// Format 配置文件格式
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf 按扩展名判断格式
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
}

// Decode 解析配置内容并补全缺省字段
func Decode(data []byte, format Format) (Arm, error) {
	var a Arm
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &a)
	case YAML:
		err = yaml.Unmarshal(data, &a)
	case JSON:
		err = json.Unmarshal(data, &a)
	default:
		return Arm{}, fmt.Errorf("config: unknown format %q", format)
	}
	if err != nil {
		return Arm{}, fmt.Errorf("config: decode %s: %w", format, err)
	}
	if err := a.fill(); err != nil {
		return Arm{}, err
	}
	return a, nil
}

// Load 读取并解析配置文件
func Load(path string) (Arm, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Arm{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Arm{}, fmt.Errorf("config: %w", err)
	}
	return Decode(data, format)
}

// fill 补全缺省值，和 wasm 入口里的做法一致：缺什么补什么
func (a *Arm) fill() error {
	n := a.Links
	if n > 0 && n < len(a.Segments) {
		return fmt.Errorf("config: links = %d but %d segments are listed", n, len(a.Segments))
	}
	if n <= 0 {
		n = len(a.Segments)
		if n == 0 {
			n = len(Palette)
		}
	}
	a.Links = n

	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		s := Segment{Length: 1, Width: 0.2, Height: 0.2, Color: Palette[i%len(Palette)]}
		if i < len(a.Segments) {
			in := a.Segments[i]
			if in.Length != 0 {
				s.Length = in.Length
			}
			if in.Width != 0 {
				s.Width = in.Width
			}
			if in.Height != 0 {
				s.Height = in.Height
			}
			if in.Color != "" {
				s.Color = in.Color
			}
		}
		segs[i] = s
	}
	a.Segments = segs

	if len(a.Base.Position) == 0 {
		a.Base.Position = []float64{-0.65, 0, 0}
	}
	if len(a.Base.Size) == 0 {
		a.Base.Size = []float64{0.1, 0.5, 0.5}
	}
	if a.Base.Color == "" {
		a.Base.Color = "white"
	}
	if a.Hinge.Radius == 0 {
		a.Hinge.Radius = 0.15
	}
	if a.Hinge.Color == "" {
		a.Hinge.Color = "red"
	}
	return nil
}

// OriginPosition 把机械臂起点转成向量，不足三维时补 0
func (a Arm) OriginPosition() (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(a.Origin) > 3 {
		return v, fmt.Errorf("config: origin has %d coordinates", len(a.Origin))
	}
	copy(v[:], a.Origin)
	return v, nil
}

// Chain 根据配置构造机械臂
func (a Arm) Chain() (*arm.Chain, error) {
	base, err := a.OriginPosition()
	if err != nil {
		return nil, err
	}
	segs := make([]arm.Segment, len(a.Segments))
	for i, s := range a.Segments {
		segs[i] = arm.Segment{Length: s.Length, Width: s.Width, Height: s.Height, Color: s.Color}
	}
	c, err := arm.NewChain(base, segs...)
	if err != nil {
		return nil, err
	}
	c.Hinge = arm.Hinge{Radius: a.Hinge.Radius, Color: a.Hinge.Color}
	return c, nil
}

// AnimatorOptions 把动画配置转成 arm.AnimatorOptions
func (a Arm) AnimatorOptions() (arm.AnimatorOptions, error) {
	m, err := arm.ParseMotion(a.Animation.Motion)
	if err != nil {
		return arm.AnimatorOptions{}, err
	}
	return arm.AnimatorOptions{
		Motion:  m,
		From:    a.Animation.From,
		To:      a.Animation.To,
		Frames:  a.Animation.Frames,
		Delta:   a.Animation.Delta,
		Offset:  a.Animation.Offset,
		Initial: a.Animation.Initial,
	}, nil
}

// Animator 构造机械臂和动画状态
func (a Arm) Animator() (*arm.Animator, error) {
	c, err := a.Chain()
	if err != nil {
		return nil, err
	}
	opts, err := a.AnimatorOptions()
	if err != nil {
		return nil, err
	}
	return arm.NewAnimator(c, opts)
}
