package variant

import (
	"fmt"
	"strconv"
)

// Kind identifies the case held by a Value.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is the payload of a Slot. It is implemented only by Int, Text and Bool.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Int is an integer payload.
type Int int32

// Text is a string payload.
type Text string

// Bool is a boolean payload.
type Bool bool

func (Int) Kind() Kind  { return KindInt }
func (Text) Kind() Kind { return KindText }
func (Bool) Kind() Kind { return KindBool }

func (v Int) String() string  { return "Int(" + strconv.FormatInt(int64(v), 10) + ")" }
func (v Text) String() string { return "Text(" + strconv.Quote(string(v)) + ")" }
func (v Bool) String() string { return "Bool(" + strconv.FormatBool(bool(v)) + ")" }

func (Int) isValue()  {}
func (Text) isValue() {}
func (Bool) isValue() {}
