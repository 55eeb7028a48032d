package model

import (
	"fmt"
	"strings"
)

type GroupKind int

const (
	Homogeneous GroupKind = iota + 1
	Heterogeneous
	Combined
)

var groupKindNames = map[GroupKind]string{
	Homogeneous:   "homogeneous",
	Heterogeneous: "heterogeneous",
	Combined:      "combined",
}

// Multiplicative weight of the kind inside the candidate score
func (kind GroupKind) Weight() float64 {
	switch kind {
	case Homogeneous:
		return 1
	case Heterogeneous:
		return 2
	case Combined:
		return 3
	}
	return 0
}

func (kind GroupKind) Valid() bool {
	_, ok := groupKindNames[kind]
	return ok
}

func (kind GroupKind) String() string {
	if name, ok := groupKindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("GroupKind(%d)", int(kind))
}

func GroupKinds() []GroupKind {
	return []GroupKind{Homogeneous, Heterogeneous, Combined}
}

func ParseGroupKind(name string) (GroupKind, error) {
	for kind, kindName := range groupKindNames {
		if strings.EqualFold(kindName, strings.TrimSpace(name)) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown group kind \"%v\"", ErrInvalidInput, name)
}
