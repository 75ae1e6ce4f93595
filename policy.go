package strata

import (
	"errors"
	"fmt"
)

// Policy selects how two sequences or two sets combine when they meet at
// the same position of a merge. Mappings and scalars ignore it.
type Policy int

const (
	Replace Policy = iota
	Append
	Prepend
)

var ErrBadPolicy = errors.New("bad policy")

func ParsePolicy(v string) (Policy, error) {
	p, ok := map[string]Policy{
		"r":       Replace,
		"replace": Replace,
		"a":       Append,
		"append":  Append,
		"p":       Prepend,
		"prepend": Prepend,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPolicy, v)
}

func (p Policy) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case Replace:
		return []byte("replace"), nil
	case Append:
		return []byte("append"), nil
	case Prepend:
		return []byte("prepend"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a policy>", p)
	}
}

func (p *Policy) UnmarshalText(d []byte) error {
	pp, err := ParsePolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Policies returns all merge policies.
func Policies() []Policy {
	return []Policy{Replace, Append, Prepend}
}
