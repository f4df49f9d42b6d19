// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/pdiddy/dirsearch/pkg/types"
)

// ErrInvalidName is returned when a listed name is not "Last, First [(Nick)]".
var ErrInvalidName = errors.New("invalid directory name")

var namePattern = regexp.MustCompile(`^\s*(?P<last>[^,]*?)\s*,\s+(?P<first>.*?)\s*(?:\(\s*(?P<nick>.*?)\s*\)\s*)?$`)

// ParseName parses a name in the directory's "Last, First (Nickname)" form.
// The nickname is optional.
func ParseName(s string) (types.Name, error) {
	m := namePattern.FindStringSubmatch(s)
	if m == nil {
		return types.Name{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return types.Name{
		Last:  m[namePattern.SubexpIndex("last")],
		First: m[namePattern.SubexpIndex("first")],
		Nick:  m[namePattern.SubexpIndex("nick")],
	}, nil
}
