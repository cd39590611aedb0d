package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/typeahead/internal/completion"
)

// ErrLuaClosed is returned when completing against a closed Lua provider.
var ErrLuaClosed = errors.New("provider: lua state closed")

// Lua runs a user script that defines a global `complete(base, text)`
// function returning a table of candidates. Each entry is either a
// plain string (the label) or a table with `label`, and optionally
// `kind` and `detail`, fields.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes
// Complete calls, which the engine issues from concurrent request
// goroutines.
type Lua struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewLua creates a provider from the given script file. Only the base,
// table, string, and math libraries are opened; scripts get no io or os
// access.
func NewLua(scriptPath string) (*Lua, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	if err := L.DoFile(scriptPath); err != nil {
		L.Close()
		return nil, fmt.Errorf("provider: loading lua script: %w", err)
	}

	if L.GetGlobal("complete").Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("provider: script %s does not define complete()", scriptPath)
	}

	return &Lua{state: L}, nil
}

// Close releases the Lua state. Safe to call more than once.
func (p *Lua) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.state.Close()
		p.closed = true
	}
	return nil
}

// Complete calls the script's complete() with the base and buffer text.
func (p *Lua) Complete(_ context.Context, req completion.Request) (items []completion.Item, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrLuaClosed
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider: lua panic: %v", r)
		}
	}()

	if callErr := p.state.CallByParam(lua.P{
		Fn:      p.state.GetGlobal("complete"),
		NRet:    1,
		Protect: true,
	}, lua.LString(req.Meet.Base), lua.LString(req.Text)); callErr != nil {
		return nil, fmt.Errorf("provider: lua complete(): %w", callErr)
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		if ret == lua.LNil {
			return nil, nil
		}
		return nil, fmt.Errorf("provider: complete() returned %s, want table", ret.Type())
	}

	table.ForEach(func(_, v lua.LValue) {
		if item, ok := itemFromLua(v); ok {
			items = append(items, item)
		}
	})
	return items, nil
}

// itemFromLua converts one table entry to an Item. Entries with no
// usable label are dropped.
func itemFromLua(v lua.LValue) (completion.Item, bool) {
	switch lv := v.(type) {
	case lua.LString:
		return completion.Item{Label: string(lv), Kind: "lua"}, true

	case *lua.LTable:
		label, ok := lv.RawGetString("label").(lua.LString)
		if !ok || label == "" {
			return completion.Item{}, false
		}
		item := completion.Item{Label: string(label), Kind: "lua"}
		if kind, ok := lv.RawGetString("kind").(lua.LString); ok {
			item.Kind = string(kind)
		}
		if detail, ok := lv.RawGetString("detail").(lua.LString); ok {
			item.Detail = string(detail)
		}
		return item, true

	default:
		return completion.Item{}, false
	}
}
