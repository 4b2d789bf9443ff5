package arm

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrConfiguration 输入结构不对：关节角个数和臂段数不一致，或者没有臂段
	ErrConfiguration = errors.New("arm: configuration error")

	// ErrNumeric 输入里有 NaN / Inf，或者长度不是正数
	ErrNumeric = errors.New("arm: numeric error")
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func checkChain(segments []Segment, base mgl64.Vec3) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: chain has no segments", ErrConfiguration)
	}
	for i, s := range segments {
		if !finite(s.Length) {
			return fmt.Errorf("%w: segment %d length is %v", ErrNumeric, i, s.Length)
		}
		if s.Length <= 0 {
			return fmt.Errorf("%w: segment %d length %v is not positive", ErrNumeric, i, s.Length)
		}
	}
	for k, x := range base {
		if !finite(x) {
			return fmt.Errorf("%w: base coordinate %d is %v", ErrNumeric, k, x)
		}
	}
	return nil
}

func checkAngles(n int, angles []float64) error {
	if len(angles) != n {
		return fmt.Errorf("%w: %d joint angles for %d segments", ErrConfiguration, len(angles), n)
	}
	for i, a := range angles {
		if !finite(a) {
			return fmt.Errorf("%w: joint angle %d is %v", ErrNumeric, i, a)
		}
	}
	return nil
}
