/*
Package format parses flat text records driven by a pattern.

A pattern describes the shape of a record: literal characters which have
to match verbatim, typed scalar fields, fixed and bounded-variable arrays,
matrices, and an optional trailing section. Example:

    f := format.New(format.Trim(true))
    fields, err := f.SetFormat("#i,t;v,5d;?z")
    …
    rec, err := f.Parse("#42,hello;1.5,2.5;true")   // [42 "hello" [1.5 2.5] true]
    rec, err = f.Parse("#7, x ;0.5;")               // [7 "x" [0.5]]

Pattern Grammar

Type characters are

    b byte     c char     s short    i int      l long
    f float    d double   t string   z boolean

A scalar field is a type character followed by its separator ("i,").
A type character at the very end of a pattern has no separator and runs to
the end of the content.

Arrays are "a" (exactly N elements) or "v" (1…N elements), followed by the
element separator, the bound N and the element type: "a,5i", "v;12d".

Matrices are "m", the row separator, the number of rows, the column
separator, the number of columns and the element type: "m;2,3i" reads
"1,2,3;4,5,6".

The pattern character following a field descriptor is its terminator: it
ends a field, array or row even if it differs from the separator. The
terminator is not consumed; it has to be matched by the pattern as a
literal.

A "?" makes the rest of the pattern optional: if the content is exhausted
when the engine reaches it (or at any later field boundary), parsing ends
successfully.

Parentheses, brackets and braces in the content are balanced while scanning
for a separator: "(1,2),3" splits into "(1,2)" and "3". A backslash escapes
the next content character.

Concurrency

A Format is configured and compiled once. After that, Parse may be called
from multiple goroutines: every call works on its own parse context.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kit.format'.
func tracer() tracing.Trace {
	return tracing.Select("kit.format")
}
