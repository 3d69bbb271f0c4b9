package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"
)

// decode unmarshals raw into v using the format implied by name's extension.
// Unknown fields are rejected in every format.
func decode(name string, raw []byte, v any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON(raw, v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errEmpty
			}
			return err
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errTrailing
		}
		return nil
	case ".lua":
		return decodeLua(name, raw, v)
	default:
		return fmt.Errorf("unsupported content format %q", filepath.Ext(name))
	}
}

func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmpty
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailing
	}
	return nil
}

// decodeLua runs a content script in a sandboxed VM (base, table, string and
// math libraries only). The script must return an array table of records;
// records use the same keys as the JSON format.
func decodeLua(name string, raw []byte, v any) error {
	vm := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer vm.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := vm.CallByParam(lua.P{
			Fn:      vm.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return fmt.Errorf("open lua %s: %w", lib.name, err)
		}
	}

	fn, err := vm.Load(bytes.NewReader(raw), name)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	vm.Push(fn)
	if err := vm.PCall(0, 1, nil); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	ret := vm.Get(-1)
	vm.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return fmt.Errorf("script must return a table, got %s", ret.Type())
	}
	plain, err := fromLua(tbl)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(plain)
	if err != nil {
		return err
	}
	return decodeJSON(buf, v)
}

// fromLua converts a Lua value into JSON-compatible Go values. Tables with a
// sequence part become slices, other tables become string-keyed maps, and
// empty tables become null so they decode as empty lists or zero records.
func fromLua(v lua.LValue) (any, error) {
	switch lv := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LBool:
		return bool(lv), nil
	case lua.LNumber:
		return float64(lv), nil
	case lua.LString:
		return string(lv), nil
	case *lua.LTable:
		if n := lv.MaxN(); n > 0 {
			if key := strayKey(lv, n); key != nil {
				return nil, fmt.Errorf("list table also has key %s", key.String())
			}
			out := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				item, err := fromLua(lv.RawGetInt(i))
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				out = append(out, item)
			}
			return out, nil
		}
		out := make(map[string]any)
		var convErr error
		lv.ForEach(func(key, val lua.LValue) {
			if convErr != nil {
				return
			}
			k, ok := key.(lua.LString)
			if !ok {
				convErr = fmt.Errorf("table key %s is not a string", key.String())
				return
			}
			item, err := fromLua(val)
			if err != nil {
				convErr = fmt.Errorf("%s: %w", string(k), err)
				return
			}
			out[string(k)] = item
		})
		if convErr != nil {
			return nil, convErr
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported lua value of type %s", v.Type())
	}
}

// strayKey returns the first key of a list table that is not one of its
// indices 1..n, or nil.
func strayKey(tbl *lua.LTable, n int) lua.LValue {
	var stray lua.LValue
	tbl.ForEach(func(key, _ lua.LValue) {
		if stray != nil {
			return
		}
		if num, ok := key.(lua.LNumber); ok {
			if i := int(num); float64(i) == float64(num) && i >= 1 && i <= n {
				return
			}
		}
		stray = key
	})
	return stray
}
