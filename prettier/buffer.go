package prettier

import (
	"bytes"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

// FormatBuffer formats a NUL-terminated (or plain) byte buffer and returns a
// newly allocated, NUL-terminated result. It returns nil when the buffer is
// empty or starts with NUL, and when formatting fails.
func FormatBuffer(buf []byte) []byte {
	if len(buf) == 0 || buf[0] == 0 {
		return nil
	}
	if end := bytes.IndexByte(buf, 0); end != -1 {
		buf = buf[:end]
	}

	formatted, err := Format(string(buf))
	if err != nil {
		util.LogF("Thumb Prettier: buffer formatting failed: %v", err)
		return nil
	}

	out := make([]byte, 0, len(formatted)+1)
	out = append(out, formatted...)
	return append(out, 0)
}
