package cli

import (
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ccoveille/go-safecast/v2"

	"go.llib.dev/iota/pkg/mathkit"
	"go.llib.dev/iota/pkg/ordinal"
)

var generators = map[string]generator{
	"int":     integer[int](),
	"int8":    integer[int8](),
	"int16":   integer[int16](),
	"int32":   integer[int32](),
	"int64":   integer[int64](),
	"uint":    integer[uint](),
	"uint8":   integer[uint8](),
	"uint16":  integer[uint16](),
	"uint32":  integer[uint32](),
	"uint64":  integer[uint64](),
	"float64": sequence[float64]{parse: parseFloat, reachable: floatReachable},
	"rune":    sequence[rune]{parse: parseRune, present: func(r rune) any { return string(r) }},
	"date":    sequence[ordinal.Date]{parse: ordinal.ParseDate},
	"weekday": sequence[ordinal.Weekday]{parse: ordinal.ParseWeekday},
	"semver":  sequence[ordinal.Patch]{parse: ordinal.ParsePatch, reachable: patchReachable},
}

// TypeNames lists the value types that the command can generate, in alphabetical order.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(generators))
}

func integer[I mathkit.Int]() sequence[I] {
	return sequence[I]{parse: parseInteger[I]}
}

// parseInteger parses raw as a 64 bit integer, then converts it to I without losing its value.
func parseInteger[I mathkit.Int](raw string) (I, error) {
	raw = strings.TrimSpace(raw)
	var (
		v   I
		err error
	)
	if mathkit.IsSigned[I]() {
		var n int64
		n, err = strconv.ParseInt(raw, 0, 64)
		if err == nil {
			v, err = safecast.Convert[I](n)
		}
	} else {
		var n uint64
		n, err = strconv.ParseUint(raw, 0, 64)
		if err == nil {
			v, err = safecast.Convert[I](n)
		}
	}
	if err != nil {
		return 0, ErrUsage.F("%q is not a valid %s: %s", raw, reflect.TypeFor[I](), err.Error())
	}
	return v, nil
}

func parseFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrUsage.F("%q is not a finite float64", raw)
	}
	return f, nil
}

// floatReachable tells if stepping by one from `from` lands exactly on `to`.
func floatReachable(from, to float64) bool {
	const maxExactStep = 1 << 53
	d := to - from
	return 0 <= d && d <= maxExactStep && d == math.Trunc(d) && from+d == to
}

func parseRune(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, ErrUsage.F("%q is not a single character", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError {
		return 0, ErrUsage.F("%q is not a valid character", raw)
	}
	return r, nil
}

// patchReachable tells if `to` is a later patch release of the same minor version as `from`.
func patchReachable(from, to ordinal.Patch) bool {
	if from.Equal(to) {
		return true
	}
	f, t := from.Version(), to.Version()
	return f.Major() == t.Major() &&
		f.Minor() == t.Minor() &&
		t.Prerelease() == "" &&
		f.Patch() <= t.Patch()
}
