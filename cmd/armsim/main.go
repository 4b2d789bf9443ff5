// Command armsim 在终端里跑机械臂正运动学动画，不开窗口
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"

	"robotarm/arm"
	"robotarm/config"
	"robotarm/render"
)

// Config armsim 的命令行参数
type Config struct {

	// File 机械臂配置文件（.toml / .yaml / .json），为空时用默认的四节臂
	File string `flag:"f,file"`

	// Format 输出格式：text 或 json
	Format string `default:"text"`

	// Frames 最多输出多少帧，0 表示放完为止（增量模式下必须给）
	Frames int `cmd:"run"`

	// Motion 覆盖配置里的动画方式：sweep 或 increment
	Motion string `cmd:"run"`

	// Angles 关节角（弧度），个数必须等于臂段数
	Angles []string `cmd:"pose" posarg:"leftover" required:"-"`

	// Verbose 打印调试日志
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("armsim", "Forward-kinematics robotic arm simulator.")
	// stdout 上是 JSON Lines 时不能多出一行 "succeeded"
	opts.PrintSuccess = false
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run plays the animation and writes every frame to stdout.", Root: true},
		&cli.Cmd[*Config]{Func: Pose, Name: "pose", Doc: "Pose solves one set of joint angles and prints the result."},
	)
}

func setupLog(c *Config) {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadArm(c *Config) (config.Arm, error) {
	if c.File == "" {
		return config.Default(), nil
	}
	return config.Load(c.File)
}

func newSink(c *Config, w io.Writer, chain *arm.Chain) (render.Sink, error) {
	switch c.Format {
	case "", "text":
		return render.NewTextSink(w, chain), nil
	case "json":
		return render.NewJSONSink(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", c.Format)
}

// Run 按配置播放动画，把每帧的位姿写到标准输出
func Run(c *Config) error {
	setupLog(c)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := runArm(ctx, c, os.Stdout)
	if err != nil && ctx.Err() == nil {
		return errors.Log(err)
	}
	return nil
}

// Pose 对一组关节角做一次正运动学并输出结果
func Pose(c *Config) error {
	setupLog(c)
	return errors.Log(solvePose(c, os.Stdout))
}

func runArm(ctx context.Context, c *Config, w io.Writer) error {
	a, err := loadArm(c)
	if err != nil {
		return err
	}
	if c.Motion != "" {
		a.Animation.Motion = c.Motion
	}
	anim, err := a.Animator()
	if err != nil {
		return err
	}
	if c.Frames <= 0 && a.Animation.Motion == arm.MotionIncrement.String() {
		return fmt.Errorf("increment motion never ends; set -frames")
	}
	sink, err := newSink(c, w, anim.Chain())
	if err != nil {
		return err
	}

	slog.Debug("starting animation", "segments", anim.Chain().Len(), "motion", a.Animation.Motion, "frames", c.Frames)
	n, err := render.Run(ctx, anim, sink, c.Frames)
	slog.Debug("animation stopped", "frames", n, "err", err)
	return err
}

func solvePose(c *Config, w io.Writer) error {
	a, err := loadArm(c)
	if err != nil {
		return err
	}
	chain, err := a.Chain()
	if err != nil {
		return err
	}

	angles := make([]float64, len(c.Angles))
	for i, s := range c.Angles {
		angles[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("angle %d: %w", i, err)
		}
	}
	if len(angles) == 0 {
		angles = make([]float64, chain.Len())
	}

	sol, err := chain.Solve(angles)
	if err != nil {
		return err
	}
	sink, err := newSink(c, w, chain)
	if err != nil {
		return err
	}
	return sink.Draw(arm.Frame{Angles: angles, Solution: sol})
}
