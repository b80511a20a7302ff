// Command libprettier builds the formatter as a C shared library:
//
//	go build -buildmode=c-shared -o libprettier.so ./cmd/libprettier
//
// Callers own the buffer returned by PrettierFormat and must release it with
// PrettierFree.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
)

//export PrettierFormat
func PrettierFormat(source *C.char, length C.size_t) *C.char {
	if source == nil || length == 0 {
		return nil
	}

	formatted := prettier.FormatBuffer(C.GoBytes(unsafe.Pointer(source), C.int(length)))
	if formatted == nil {
		return nil
	}
	return (*C.char)(C.CBytes(formatted))
}

//export PrettierFree
func PrettierFree(buffer *C.char) {
	C.free(unsafe.Pointer(buffer))
}

func main() {}
