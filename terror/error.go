// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

func New(err error, data map[string]any) *Err {
	return &Err{error: err, Data: data}
}

// As extracts an *Err from anywhere in err's chain, or returns nil.
func As(err error) *Err {
	tErr := new(Err)
	if ok := errors.As(err, tErr); ok {
		return tErr
	}

	return nil
}

func (e *Err) Error() string {
	if len(e.Data) == 0 {
		return e.error.Error()
	}
	fields := make([]string, 0, len(e.Data))
	for key, val := range e.Data {
		fields = append(fields, fmt.Sprintf("%v:%v", key, val))
	}
	sort.Strings(fields)

	return fmt.Sprintf("%v [%v]", e.error.Error(), strings.Join(fields, " "))
}

func (e *Err) Is(target error) bool {
	return errors.Is(e.error, target)
}

func (e *Err) Unwrap() error {
	return e.error
}

func (e *Err) As(target any) bool {
	other, ok := target.(*Err)
	if ok {
		*other = *e
	}

	return ok
}
