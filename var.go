package drillql

import (
	"reflect"
	"time"

	"github.com/gogf/gf/v2/util/gconv"
)

func NewVar(v any) *Var {
	var cache map[string]any
	if m, ok := v.(map[string]any); ok {
		cache = m
	}
	return &Var{
		v:     v,
		cache: cache,
	}
}

// Var wraps an untyped value coming from the chart layer (a clicked axis
// value or a rendered data point) for typed access.
type Var struct {
	v     any
	cache map[string]any
}

func (e *Var) ToInt() int {
	return gconv.Int(e.v)
}

func (e *Var) ToString() string {
	return gconv.String(e.v)
}

func (e *Var) ToBool() bool {
	return gconv.Bool(e.v)
}

func (e *Var) ToFloat64() float64 {
	return gconv.Float64(e.v)
}

func (e *Var) ToTime() time.Time {
	return gconv.Time(e.v)
}

func (e *Var) ToStrAnyMap() map[string]any {
	return e.cache
}

func (e *Var) ToAny() any {
	return e.v
}

func (e *Var) HasKey(n string) bool {
	if e.cache == nil {
		return false
	}
	_, ok := e.cache[n]
	return ok
}

func (e *Var) Int(n string) int {
	return gconv.Int(e.mapValue(n))
}

func (e *Var) String(n string) string {
	return gconv.String(e.mapValue(n))
}

func (e *Var) Float64(n string) float64 {
	return gconv.Float64(e.mapValue(n))
}

func (e *Var) Time(n string) time.Time {
	return gconv.Time(e.mapValue(n))
}

func (e *Var) Var(n string) *Var {
	return NewVar(e.mapValue(n))
}

func (e *Var) IsNil() bool {
	return isNull(e.v)
}

func (e *Var) mapValue(k string) any {
	if e.cache != nil {
		return e.cache[k]
	}
	return nil
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
