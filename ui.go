package main

import (
	"fmt"
	"strings"
)

//hudText lists the UI items with the selected one marked
func (v *Viewer) hudText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", v.Title, v.Options.Mode)
	for i := range v.uiItems {
		if i == v.uiSelected {
			b.WriteString("> ")
		}
		b.WriteString(v.uiItems[i].String() + "\n")
	}
	if len(v.uiItems) > 1 {
		b.WriteString("a/d azimuth, r/f elevation, shift faster\n")
	}
	b.WriteString("up/down select, left/right edit, tab hide")
	return b.String()
}

type UIItem interface {
	String() string
	NextItem()
	PreviousItem()
}

type BoolEdit struct {
	Name  string
	Value *bool
}

func (b *BoolEdit) String() string {
	return fmt.Sprintf("%s: \t<  %v  >", b.Name, *b.Value)
}

func (b *BoolEdit) NextItem() {
	*b.Value = !*b.Value
}
func (b *BoolEdit) PreviousItem() {
	*b.Value = !*b.Value
}

//FloatEdit steps a value within [Min, Max], wrapping around if Wrap is set
type FloatEdit struct {
	Name     string
	Value    *float64
	Step     float64
	Min, Max float64
	Wrap     bool
}

func (f *FloatEdit) String() string {
	return fmt.Sprintf("%s: \t<  %.1f  >", f.Name, *f.Value)
}
func (f *FloatEdit) NextItem() {
	f.set(*f.Value + f.Step)
}
func (f *FloatEdit) PreviousItem() {
	f.set(*f.Value - f.Step)
}

func (f *FloatEdit) set(v float64) {
	if f.Wrap {
		span := f.Max - f.Min
		for v > f.Max {
			v -= span
		}
		for v <= f.Min {
			v += span
		}
	} else {
		v = clamp(v, f.Min, f.Max)
	}
	*f.Value = v
}
