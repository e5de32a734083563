package evaluator

// notYetImplementedNames lists the builtins registered for name
// resolution (so `builtins.foo` and top-level aliases resolve) whose
// invocation surfaces NotYetImplemented.
// Most are out of the kernel's scope (filesystem/store/derivation I/O,
// external collaborators); sort, splitVersion, toXML and functionArgs
// are pure builtins that are not implemented.
var notYetImplementedNames = []string{
	"derivation", "fetchGit", "fetchTarball", "fetchurl", "filterSource",
	"import", "path", "pathExists", "placeholder", "readDir", "readFile",
	"storePath", "toFile", "toPath", "hashFile", "baseNameOf", "sort",
	"splitVersion", "toXML", "functionArgs",
}

func (e *Evaluator) notYetImplementedBuiltins() []*Builtin {
	builtins := make([]*Builtin, len(notYetImplementedNames))
	for i, name := range notYetImplementedNames {
		name := name
		builtins[i] = curry1(name, func(Value) (Value, error) {
			return nil, builtinNotYetImplemented(name)
		})
	}
	return builtins
}
