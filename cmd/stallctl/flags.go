package main

import (
	"strconv"
)

// optionalFloat is a float flag that remembers whether it was given.
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *optionalFloat) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

type optionalString struct {
	value string
	set   bool
}

func (f *optionalString) String() string { return f.value }

func (f *optionalString) Set(s string) error {
	f.value, f.set = s, true
	return nil
}

func (f *optionalString) ptr() *string {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

type optionalBool struct {
	value bool
	set   bool
}

func (f *optionalBool) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatBool(f.value)
}

func (f *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

// IsBoolFlag lets --active be given without a value.
func (f *optionalBool) IsBoolFlag() bool { return true }

func (f *optionalBool) ptr() *bool {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}
