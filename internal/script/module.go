package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stitch/internal/rewrite"
	"github.com/dshills/stitch/internal/splice"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "stitch"

// registerStitchModule preloads the stitch module backed by rw.
func registerStitchModule(L *lua.LState, rw *rewrite.Rewriter) {
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		funcs := map[string]lua.LGFunction{
			"len":           luaLen(rw),
			"source":        luaSource(rw),
			"slice":         luaSlice(rw),
			"result":        luaResult(rw),
			"changed":       luaChanged(rw),
			"update":        luaUpdate(rw),
			"remove":        luaRemove(rw),
			"append":        luaText(rw.Append),
			"prepend":       luaText(rw.Prepend),
			"append_left":   luaInsert(rw.AppendLeft),
			"append_right":  luaInsert(rw.AppendRight),
			"prepend_left":  luaInsert(rw.PrependLeft),
			"prepend_right": luaInsert(rw.PrependRight),
		}
		mod := L.SetFuncs(L.NewTable(), funcs)
		L.Push(mod)
		return 1
	})
}

func luaLen(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(rw.SourceLen()))
		return 1
	}
}

func luaSource(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LString(rw.Source()))
		return 1
	}
}

func luaSlice(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		start := L.CheckInt(1)
		end := L.CheckInt(2)
		if start < 0 || end < start || end > rw.SourceLen() {
			L.RaiseError("invalid slice [%d:%d) of %d-byte source", start, end, rw.SourceLen())
		}
		L.Push(lua.LString(rw.Source()[start:end]))
		return 1
	}
}

func luaResult(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LString(rw.String()))
		return 1
	}
}

func luaChanged(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(rw.HasChanged()))
		return 1
	}
}

func luaUpdate(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		start := L.CheckInt(1)
		end := L.CheckInt(2)
		text := L.CheckString(3)
		opts := splice.DefaultEditOptions()
		if L.GetTop() >= 4 {
			opts = editOptions(L, 4)
		}
		if err := rw.UpdateWith(start, end, text, opts); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}

func luaRemove(rw *rewrite.Rewriter) lua.LGFunction {
	return func(L *lua.LState) int {
		start := L.CheckInt(1)
		end := L.CheckInt(2)
		if err := rw.Remove(start, end); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}

// luaText binds a whole-document insertion such as append or prepend.
func luaText(apply func(string) error) lua.LGFunction {
	return func(L *lua.LState) int {
		text := L.CheckString(1)
		if err := apply(text); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}

// luaInsert binds an offset-anchored insertion such as append_left.
func luaInsert(insert func(int, string) error) lua.LGFunction {
	return func(L *lua.LState) int {
		offset := L.CheckInt(1)
		text := L.CheckString(2)
		if err := insert(offset, text); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}

// editOptions reads an options table of the form
// {overwrite = bool, store_name = bool}. Missing keys keep defaults.
func editOptions(L *lua.LState, n int) splice.EditOptions {
	opts := splice.DefaultEditOptions()
	tbl := L.CheckTable(n)
	if v := L.GetField(tbl, "overwrite"); v != lua.LNil {
		opts.Overwrite = lua.LVAsBool(v)
	}
	if v := L.GetField(tbl, "store_name"); v != lua.LNil {
		opts.StoreName = lua.LVAsBool(v)
	}
	return opts
}
