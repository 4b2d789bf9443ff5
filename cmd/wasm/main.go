//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"robotarm/arm"
	"robotarm/config"
	"robotarm/render"
)

// simulation 由 JS 侧的渲染循环驱动，Go 这边只负责算位姿
type simulation struct {
	cfg   config.Arm
	anim  *arm.Animator
	frame *arm.Frame // 最近一次 tick 的结果
}

var sim *simulation

func toJS(v any) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Println("toJS: json error:", err)
		return nil
	}
	return js.Global().Get("JSON").Call("parse", string(b))
}

func rawArg(v js.Value) string {
	if v.Type() == js.TypeString {
		return v.String()
	}
	return js.Global().Get("JSON").Call("stringify", v).String()
}

// ArmInit(config) 配置可以是 JSON 字符串或对象，缺省字段用默认值
func armInit(this js.Value, args []js.Value) interface{} {
	cfg := config.Default()
	if len(args) > 0 && !args[0].IsUndefined() && !args[0].IsNull() {
		var err error
		cfg, err = config.Decode([]byte(rawArg(args[0])), config.JSON)
		if err != nil {
			fmt.Println("ArmInit:", err)
			return nil
		}
	}

	anim, err := cfg.Animator()
	if err != nil {
		fmt.Println("ArmInit:", err)
		return nil
	}

	sim = &simulation{cfg: cfg, anim: anim}
	return toJS(cfg)
}

// ArmTick(n) 前进 n 帧（默认 1），返回最后一帧的位姿
func armTick(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	sub := 1
	if len(args) >= 1 {
		if v := args[0].Int(); v > 0 {
			sub = v
		}
	}
	for i := 0; i < sub && !sim.anim.Done(); i++ {
		f, err := sim.anim.Tick()
		if err != nil {
			fmt.Println("ArmTick:", err)
			return nil
		}
		sim.frame = &f
	}
	return armPose(this, nil)
}

// ArmPose() 返回最近一帧，还没 tick 过时返回 null
func armPose(this js.Value, args []js.Value) interface{} {
	if sim == nil || sim.frame == nil {
		return nil
	}
	return toJS(render.NewFrameState(*sim.frame))
}

// ArmSolve(angles) 不改动画状态，直接用给定关节角求一次
func armSolve(this js.Value, args []js.Value) interface{} {
	if sim == nil || len(args) < 1 {
		return nil
	}
	var angles []float64
	if err := json.Unmarshal([]byte(rawArg(args[0])), &angles); err != nil {
		fmt.Println("ArmSolve: json error:", err)
		return nil
	}
	sol, err := sim.anim.Chain().Solve(angles)
	if err != nil {
		fmt.Println("ArmSolve:", err)
		return nil
	}
	return toJS(render.NewFrameState(arm.Frame{Angles: angles, Solution: sol}))
}

// ArmReset() 回到第 0 帧
func armReset(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	sim.anim.Reset()
	sim.frame = nil
	return nil
}

func armDone(this js.Value, args []js.Value) interface{} {
	return sim != nil && sim.anim.Done()
}

func registerCallbacks() {
	js.Global().Set("ArmInit", js.FuncOf(armInit))
	js.Global().Set("ArmTick", js.FuncOf(armTick))
	js.Global().Set("ArmPose", js.FuncOf(armPose))
	js.Global().Set("ArmSolve", js.FuncOf(armSolve))
	js.Global().Set("ArmReset", js.FuncOf(armReset))
	js.Global().Set("ArmDone", js.FuncOf(armDone))
}

func main() {
	c := make(chan struct{})
	registerCallbacks()
	<-c
}

// $env:GOOS="js"; $env:GOARCH="wasm"; go build -ldflags="-s -w" -gcflags="all=-trimpath=${PWD}" -asmflags="all=-trimpath=${PWD}" -o web/main.wasm ./cmd/wasm
