package script

import (
	lua "github.com/yuin/gopher-lua"
)

// safeModules lists the built-in libraries require may resolve.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// installSandbox strips the escape hatches from a fresh state. Scripts
// keep the pure-computation libraries and the preloaded stitch module;
// everything that reads the file system or loads code from outside the
// script goes away.
func installSandbox(L *lua.LState) {
	dangerousFuncs := []string{
		"dofile",     // Load and execute file
		"loadfile",   // Load file as function
		"load",       // Load string as function
		"loadstring", // Load string as function (deprecated but may exist)
	}
	for _, name := range dangerousFuncs {
		L.SetGlobal(name, lua.LNil)
	}

	// Clear package.path and package.cpath to prevent loading modules
	// from disk. Only preloaded modules can be required after this.
	pkg := L.GetGlobal("package")
	if pkgTable, ok := pkg.(*lua.LTable); ok {
		L.SetField(pkgTable, "path", lua.LString(""))
		L.SetField(pkgTable, "cpath", lua.LString(""))
	}

	installSafeRequire(L)
}

// installSafeRequire replaces require with a whitelist-based version.
// Only the safe built-in modules and the stitch module resolve; anything
// else raises an error.
func installSafeRequire(L *lua.LState) {
	originalRequire := L.GetGlobal("require")

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)

		if safeModules[modName] || modName == ModuleName {
			L.Push(originalRequire)
			L.Push(lua.LString(modName))
			L.Call(1, 1)
			return 1
		}

		// Note: L.RaiseError does a longjmp, so code after it is unreachable.
		L.RaiseError("module %q is not available", modName)
		return 0
	}))
}
