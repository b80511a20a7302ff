package prettier

import "strings"

// MaxKeywordLength is the width of the mnemonic column. Every entry of the
// keyword table fits in it.
const MaxKeywordLength = 6

var keywordsWithArgs = []string{
	"movs", "mov", "adds", "add", "adcs", "adr", "subs", "sbcs", "sub", "rsbs", "muls",
	"cmp", "cmn", "ands", "eors", "orrs", "bics", "mvns", "tst", "lsls", "lsrs", "asrs",
	"rors", "ldr", "ldrh", "ldrb", "ldrsh", "ldrsb", "ldm", "str", "strh", "strb", "stm",
	"push", "pop", "b", "bl", "bx", "blx", "beq", "bne", "bgt", "blt", "bge", "ble",
	"bcs", "bcc", "bmi", "bpl", "bvs", "bvc", "bhi", "bls", "sxth", "sxtb", "uxth",
	"uxtb", "rev", "rev16", "revsh", "svc", "cpsid", "cpsie", "mrs", "msr", "bkpt",
}

var keywordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(keywordsWithArgs))
	for _, k := range keywordsWithArgs {
		set[k] = struct{}{}
	}
	return set
}()

// Keywords returns a copy of the recognized mnemonics in table order.
func Keywords() []string {
	return append([]string(nil), keywordsWithArgs...)
}

// IsKeyword reports whether word is a recognized mnemonic, ignoring case.
func IsKeyword(word string) bool {
	_, ok := keywordSet[strings.ToLower(word)]
	return ok
}
