package selector

import "github.com/quantmind-br/toolprobe/internal/core"

// Any accepts every Config
func Any() core.Predicate {
	return func(*core.Config) bool { return true }
}

// All accepts a Config only when every predicate does. Nil entries are
// ignored.
func All(preds ...core.Predicate) core.Predicate {
	return func(cfg *core.Config) bool {
		for _, p := range preds {
			if p != nil && !p(cfg) {
				return false
			}
		}
		return true
	}
}

// MajorIs accepts versions with the given major number
func MajorIs(major int) core.Predicate {
	return func(cfg *core.Config) bool { return cfg.Version().Major == major }
}

// AtLeast accepts versions >= major.minor
func AtLeast(major, minor int) core.Predicate {
	return func(cfg *core.Config) bool { return cfg.Version().AtLeast(major, minor) }
}

// ImplementationIs accepts one interpreter implementation
func ImplementationIs(impl core.Implementation) core.Predicate {
	return func(cfg *core.Config) bool { return cfg.Implementation() == impl }
}

// MatchConstraint accepts versions satisfying a parsed constraint
func MatchConstraint(c core.Constraint) core.Predicate {
	return func(cfg *core.Config) bool { return c.Check(cfg.Version()) }
}

// Static accepts interpreters by runtime linkage
func Static(static bool) core.Predicate {
	return func(cfg *core.Config) bool { return cfg.IsStatic() == static }
}
