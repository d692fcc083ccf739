// Package dependency names the assets a page can depend on.
//
// A dependency is written as "type:name", for example "script:htmx" or
// "style:colors". That textual form is what travels in the
// X-Teapot-Dependencies request header.
package dependency

import (
	"errors"
	"fmt"
	"strings"
)

type Type uint8

const (
	TypeInvalid Type = iota // should not be used
	TypeStyle
	TypeScript
)

var (
	ErrInvalidDependency = errors.New("invalid dependency")
	ErrInvalidType       = errors.New("invalid dependency type")
)

func ParseType(raw string) (Type, error) {
	switch raw {
	case "style":
		return TypeStyle, nil
	case "script":
		return TypeScript, nil
	default:
		return TypeInvalid, fmt.Errorf("could not parse dependency type %q: %w", raw, ErrInvalidType)
	}
}

func (t Type) String() string {
	switch t {
	case TypeStyle:
		return "style"
	case TypeScript:
		return "script"
	default:
		return "invalid"
	}
}

type Dependency struct {
	Type Type
	Name string
}

// Parse reads the "type:name" form. The name must not be empty.
func Parse(raw string) (Dependency, error) {
	kind, name, ok := strings.Cut(raw, ":")
	if !ok || name == "" || strings.Contains(name, ":") {
		return Dependency{}, fmt.Errorf("could not parse dependency %q: %w", raw, ErrInvalidDependency)
	}

	t, err := ParseType(kind)
	if err != nil {
		return Dependency{}, err
	}

	return Dependency{Type: t, Name: name}, nil
}

func MustParse(raw string) Dependency {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dependency) String() string {
	return d.Type.String() + ":" + d.Name
}

func (d Dependency) MarshalText() ([]byte, error) {
	if d.Type == TypeInvalid {
		return nil, fmt.Errorf("cannot marshal %q: %w", d.Name, ErrInvalidType)
	}
	return []byte(d.String()), nil
}

func (d *Dependency) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
