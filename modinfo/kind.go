package modinfo

import "fmt"

// Kind is the field kind of an annotation, i.e. the first token after
// [StartMarker].
type Kind int

const (
	KindArch Kind = iota
	KindObj
	KindDep
	KindOpts

	numKinds
)

var kindNames = [numKinds]string{
	KindArch: "arch",
	KindObj:  "obj",
	KindDep:  "dep",
	KindOpts: "opts",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// ParseKind returns the Kind named s. Any name other than "arch", "obj",
// "dep" and "opts" is rejected.
func ParseKind(s string) (Kind, error) {
	k, ok := kindsByName[s]
	if !ok {
		return 0, fmt.Errorf("unknown annotation kind %q", s)
	}
	return k, nil
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Repeatable reports whether every occurrence of k is kept (true), or
// whether later occurrences overwrite earlier ones (false).
func (k Kind) Repeatable() bool {
	return slots[k].list != nil
}
