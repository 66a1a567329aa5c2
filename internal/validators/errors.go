package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Violations lists every rule broken by a validated value.
type Violations []string

// Error joins the messages with "; ".
func (v Violations) Error() string {
	return strings.Join(v, "; ")
}

// violations collects messages and produces nil when nothing was added.
type violations struct {
	list Violations
}

func (v *violations) add(msg string) {
	v.list = append(v.list, msg)
}

func (v *violations) addAll(msgs []string) {
	v.list = append(v.list, msgs...)
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return v.list
}
