// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag provides a wrapper around the standard flag package, allowing
// flags to be overridden by environment variables.
package envflag

import (
	"flag"
	"strconv"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | int64 | bool | string
}

// Var defines a flag with the given name, default value, and usage
// information, storing its value in p.
//
// If the environment variable specified by envName is set to a value that
// parses as T, it overrides the flag's default value. An explicit flag on the
// command line still wins over the environment.
func Var[T Type](
	p *T, name, envName string, value T, usage string,
	fs *flag.FlagSet, getenv func(string) string,
) {
	*p = value
	if envValue := getenv(envName); envValue != "" {
		if parsed, err := parse[T](envValue); err == nil {
			*p = parsed
		}
	}

	usage += " Can be overridden by " + envName + " environment variable."
	fs.Var(&flagValue[T]{value: p}, name, usage)
}

// Value is like Var, but allocates the variable and returns a pointer to it.
func Value[T Type](
	name, envName string, value T, usage string,
	fs *flag.FlagSet, getenv func(string) string,
) *T {
	p := new(T)
	Var(p, name, envName, value, usage, fs, getenv)
	return p
}

type flagValue[T Type] struct {
	value *T
}

func (f *flagValue[T]) String() string {
	if f.value == nil {
		return ""
	}
	return toString(*f.value)
}

func (f *flagValue[T]) Set(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

// IsBoolFlag lets boolean flags be given without a value, as in -dry-run.
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(f.value).(*bool)
	return ok
}

func parse[T Type](s string) (T, error) {
	var (
		result T
		v      any
		err    error
	)
	switch any(result).(type) {
	case int:
		v, err = strconv.Atoi(s)
	case int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case bool:
		v, err = strconv.ParseBool(s)
	case string:
		v = s
	}
	if err != nil {
		return result, err
	}
	return v.(T), nil
}

func toString[T Type](value T) string {
	switch v := any(value).(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return ""
	}
}
