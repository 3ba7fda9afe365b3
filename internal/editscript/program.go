package editscript

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/stitch/internal/splice"
)

// Op names an edit operation.
type Op string

// Supported edit operations.
const (
	OpUpdate       Op = "update"
	OpRemove       Op = "remove"
	OpAppend       Op = "append"
	OpPrepend      Op = "prepend"
	OpAppendLeft   Op = "append_left"
	OpAppendRight  Op = "append_right"
	OpPrependLeft  Op = "prepend_left"
	OpPrependRight Op = "prepend_right"
)

// Edit is one validated instruction of a program.
type Edit struct {
	Op        Op
	Start     int    // update, remove
	End       int    // update, remove
	Offset    int    // sided inserts
	Text      string // content-bearing ops
	Overwrite bool   // update only
	StoreName bool   // update only
}

// Program is a parsed edit program, applied in order.
type Program struct {
	// Path is the file the program was loaded from, empty for inline input.
	Path  string
	Edits []Edit
}

// Load reads and parses an edit program file.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load edit program: %w", err)
	}
	return parse(path, data)
}

// Parse parses an inline edit program.
func Parse(data []byte) (*Program, error) {
	return parse("", data)
}

func parse(path string, data []byte) (*Program, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: path, Index: -1, Message: "not valid JSON"}
	}

	root := gjson.ParseBytes(data)
	edits := root
	if root.IsObject() {
		edits = root.Get("edits")
		if !edits.Exists() {
			return nil, &ParseError{Path: path, Index: -1, Message: `missing "edits" array`}
		}
	}
	if !edits.IsArray() {
		return nil, &ParseError{Path: path, Index: -1, Message: `"edits" is not an array`}
	}

	prog := &Program{Path: path}
	var perr *ParseError
	index := 0
	edits.ForEach(func(_, raw gjson.Result) bool {
		edit, err := parseEdit(path, index, raw)
		if err != nil {
			perr = err
			return false
		}
		prog.Edits = append(prog.Edits, edit)
		index++
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return prog, nil
}

func parseEdit(path string, index int, raw gjson.Result) (Edit, *ParseError) {
	fail := func(op Op, msg string) (Edit, *ParseError) {
		return Edit{}, &ParseError{Path: path, Index: index, Op: string(op), Message: msg}
	}

	if !raw.IsObject() {
		return fail("", "edit is not an object")
	}
	opField := raw.Get("op")
	if !opField.Exists() {
		return fail("", `missing "op"`)
	}
	op := Op(opField.String())

	edit := Edit{Op: op, Overwrite: true}
	switch op {
	case OpUpdate:
		var perr *ParseError
		if edit.Start, perr = intField(path, index, op, raw, "start"); perr != nil {
			return Edit{}, perr
		}
		if edit.End, perr = intField(path, index, op, raw, "end"); perr != nil {
			return Edit{}, perr
		}
		if edit.Text, perr = textField(path, index, op, raw); perr != nil {
			return Edit{}, perr
		}
		if v := raw.Get("overwrite"); v.Exists() {
			edit.Overwrite = v.Bool()
		}
		if v := raw.Get("store_name"); v.Exists() {
			edit.StoreName = v.Bool()
		}

	case OpRemove:
		var perr *ParseError
		if edit.Start, perr = intField(path, index, op, raw, "start"); perr != nil {
			return Edit{}, perr
		}
		if edit.End, perr = intField(path, index, op, raw, "end"); perr != nil {
			return Edit{}, perr
		}

	case OpAppend, OpPrepend:
		var perr *ParseError
		if edit.Text, perr = textField(path, index, op, raw); perr != nil {
			return Edit{}, perr
		}

	case OpAppendLeft, OpAppendRight, OpPrependLeft, OpPrependRight:
		var perr *ParseError
		if edit.Offset, perr = intField(path, index, op, raw, "offset"); perr != nil {
			return Edit{}, perr
		}
		if edit.Text, perr = textField(path, index, op, raw); perr != nil {
			return Edit{}, perr
		}

	default:
		return fail(op, fmt.Sprintf("unknown op %q", string(op)))
	}

	return edit, nil
}

func intField(path string, index int, op Op, raw gjson.Result, name string) (int, *ParseError) {
	fail := func(msg string) (int, *ParseError) {
		return 0, &ParseError{Path: path, Index: index, Op: string(op), Message: msg}
	}

	v := raw.Get(name)
	if !v.Exists() {
		return fail(fmt.Sprintf("missing %q", name))
	}
	if v.Type != gjson.Number {
		return fail(fmt.Sprintf("%q is not a number", name))
	}
	n := v.Int()
	if n < 0 {
		return fail(fmt.Sprintf("%q is negative", name))
	}
	if n > int64(splice.MaxTextLen) {
		return fail(fmt.Sprintf("%q exceeds the offset limit", name))
	}
	return int(n), nil
}

func textField(path string, index int, op Op, raw gjson.Result) (string, *ParseError) {
	v := raw.Get("text")
	if !v.Exists() {
		return "", &ParseError{Path: path, Index: index, Op: string(op), Message: `missing "text"`}
	}
	if v.Type != gjson.String {
		return "", &ParseError{Path: path, Index: index, Op: string(op), Message: `"text" is not a string`}
	}
	return v.String(), nil
}
