package prettier

import "strings"

var hoverInfoFormats = map[string]string{
	"movs":  "Move Instruction, setting flags.\n\nFormat: `movs <dst reg>, <imm8 | src reg>`\n\nExample: `movs r0, #5` is the same as `r0 = 5`",
	"mov":   "Move Instruction.\n\nFormat: `mov <dst reg>, <src reg>`\n\nExample: `mov r0, r1` is the same as `r0 = r1`\n\nNote that `mov` does not update the condition flags; high registers may be used.",
	"adds":  "Addition Instruction, setting flags.\n\nFormat: `adds <dst reg>, <src reg>, <src reg | imm3>`\n\nExample: `adds r0, r1, r2` is the same as `r0 = r1 + r2`",
	"add":   "Addition Instruction.\n\nFormat: `add <dst reg>, <src reg>`\n\nExample: `add r0, r8` is the same as `r0 = r0 + r8`\n\nNote that this form does not update the condition flags.",
	"adcs":  "Add with Carry Instruction.\n\nFormat: `adcs <dst reg>, <src reg>`\n\nExample: `adcs r0, r1` is the same as `r0 = r0 + r1 + C`",
	"adr":   "Address Instruction.\n\nFormat: `adr <dst reg>, <label>`\n\nExample: `adr r0, table` loads the word-aligned address of `table` relative to the pc.",
	"subs":  "Subtraction Instruction, setting flags.\n\nFormat: `subs <dst reg>, <src reg>, <src reg | imm3>`\n\nExample: `subs r0, r1, r2` is the same as `r0 = r1 - r2`",
	"sbcs":  "Subtract with Carry Instruction.\n\nFormat: `sbcs <dst reg>, <src reg>`\n\nExample: `sbcs r0, r1` is the same as `r0 = r0 - r1 - !C`",
	"sub":   "Stack Pointer Subtraction Instruction.\n\nFormat: `sub sp, sp, #<imm>`\n\nExample: `sub sp, sp, #16` reserves 16 bytes of stack.",
	"rsbs":  "Reverse Subtract Instruction.\n\nFormat: `rsbs <dst reg>, <src reg>, #0`\n\nExample: `rsbs r0, r1, #0` is the same as `r0 = -r1`",
	"muls":  "Multiply Instruction.\n\nFormat: `muls <dst reg>, <src reg>, <dst reg>`\n\nExample: `muls r0, r1, r0` is the same as `r0 = r1 * r0`\n\nOnly the low 32 bits of the product are kept.",
	"cmp":   "Compare Instruction.\n\nFormat: `cmp <reg>, <reg | imm8>`\n\nExample: `cmp r0, #10` sets the flags for `r0 - 10` and discards the result.",
	"cmn":   "Compare Negative Instruction.\n\nFormat: `cmn <reg>, <reg>`\n\nExample: `cmn r0, r1` sets the flags for `r0 + r1` and discards the result.",
	"ands":  "AND Instruction.\n\nFormat: `ands <dst reg>, <src reg>`\n\nExample: `ands r0, r1` is the same as `r0 = r0 & r1`",
	"eors":  "XOR Instruction.\n\nFormat: `eors <dst reg>, <src reg>`\n\nExample: `eors r0, r1` is the same as `r0 = r0 ^ r1`",
	"orrs":  "OR Instruction.\n\nFormat: `orrs <dst reg>, <src reg>`\n\nExample: `orrs r0, r1` is the same as `r0 = r0 | r1`",
	"bics":  "Bit Clear Instruction.\n\nFormat: `bics <dst reg>, <src reg>`\n\nExample: `bics r0, r1` is the same as `r0 = r0 & ~r1`",
	"mvns":  "Move NOT Instruction.\n\nFormat: `mvns <dst reg>, <src reg>`\n\nExample: `mvns r0, r1` is the same as `r0 = ~r1`",
	"tst":   "Test Instruction.\n\nFormat: `tst <reg>, <reg>`\n\nExample: `tst r0, r1` sets the flags for `r0 & r1` and discards the result.",
	"lsls":  "Logical Shift Left Instruction.\n\nFormat: `lsls <dst reg>, <src reg>, <imm5 | reg>`\n\nExample: `lsls r0, r1, #2` is the same as `r0 = r1 << 2`",
	"lsrs":  "Logical Shift Right Instruction.\n\nFormat: `lsrs <dst reg>, <src reg>, <imm5 | reg>`\n\nExample: `lsrs r0, r1, #2` is the same as `r0 = r1 >> 2`",
	"asrs":  "Arithmetic Shift Right Instruction.\n\nFormat: `asrs <dst reg>, <src reg>, <imm5 | reg>`\n\nExample: `asrs r0, r1, #2` is the same as `r0 = int32_t(r1) >> 2`\n\nThe most-significant bit is copied for each bit shifted.",
	"rors":  "Rotate Right Instruction.\n\nFormat: `rors <dst reg>, <amt reg>`\n\nExample: `rors r0, r1` rotates `r0` right by `r1` bits.",
	"ldr":   "Load Word Instruction.\n\nFormat: `ldr <dst reg>, [<base reg>, <offset>]`\n\nExample: `ldr r0, [r1, #4]` is the same as `r0 = mem[r1 + 4]`\n\n`ldr r0, =value` loads a constant from the literal pool.",
	"ldrh":  "Load Halfword Instruction.\n\nFormat: `ldrh <dst reg>, [<base reg>, <offset>]`\n\nExample: `ldrh r0, [r1, #2]` loads 16 bits from `r1 + 2`, zero extended.",
	"ldrb":  "Load Byte Instruction.\n\nFormat: `ldrb <dst reg>, [<base reg>, <offset>]`\n\nExample: `ldrb r0, [r1, #1]` loads 8 bits from `r1 + 1`, zero extended.",
	"ldrsh": "Load Signed Halfword Instruction.\n\nFormat: `ldrsh <dst reg>, [<base reg>, <offset reg>]`\n\nExample: `ldrsh r0, [r1, r2]` loads 16 bits from `r1 + r2`, sign extended.",
	"ldrsb": "Load Signed Byte Instruction.\n\nFormat: `ldrsb <dst reg>, [<base reg>, <offset reg>]`\n\nExample: `ldrsb r0, [r1, r2]` loads 8 bits from `r1 + r2`, sign extended.",
	"ldm":   "Load Multiple Instruction.\n\nFormat: `ldm <base reg>!, {<reg list>}`\n\nExample: `ldm r0!, {r1-r3}` loads three consecutive words starting at `r0`.",
	"str":   "Store Word Instruction.\n\nFormat: `str <src reg>, [<base reg>, <offset>]`\n\nExample: `str r0, [r1, #4]` is the same as `mem[r1 + 4] = r0`",
	"strh":  "Store Halfword Instruction.\n\nFormat: `strh <src reg>, [<base reg>, <offset>]`\n\nExample: `strh r0, [r1, #2]` stores the low 16 bits of `r0`.",
	"strb":  "Store Byte Instruction.\n\nFormat: `strb <src reg>, [<base reg>, <offset>]`\n\nExample: `strb r0, [r1, #1]` stores the low 8 bits of `r0`.",
	"stm":   "Store Multiple Instruction.\n\nFormat: `stm <base reg>!, {<reg list>}`\n\nExample: `stm r0!, {r1-r3}` stores three consecutive words starting at `r0`.",
	"push":  "Push Instruction.\n\nFormat: `push {<reg list>}`\n\nExample: `push {r4-r7, lr}` saves the registers on the stack.",
	"pop":   "Pop Instruction.\n\nFormat: `pop {<reg list>}`\n\nExample: `pop {r4-r7, pc}` restores the registers and returns.",
	"b":     "Branch Instruction.\n\nFormat: `b <label>`\n\nExample: `b loop` is the same as `pc = loop`",
	"bl":    "Branch with Link Instruction.\n\nFormat: `bl <label>`\n\nExample: `bl delay` is the same as `lr = pc; pc = delay`",
	"bx":    "Branch and Exchange Instruction.\n\nFormat: `bx <reg>`\n\nExample: `bx lr` returns from a function.",
	"blx":   "Branch with Link and Exchange Instruction.\n\nFormat: `blx <reg>`\n\nExample: `blx r3` is the same as `lr = pc; pc = r3`",
	"beq":   "Branch Equal Instruction.\n\nFormat: `beq <label>`\n\nExample: `beq done` branches when the Z flag is set.",
	"bne":   "Branch Not Equal Instruction.\n\nFormat: `bne <label>`\n\nExample: `bne loop` branches when the Z flag is clear.",
	"bgt":   "Branch Greater Than Instruction.\n\nFormat: `bgt <label>`\n\nExample: `bgt loop` branches on a signed greater than.",
	"blt":   "Branch Less Than Instruction.\n\nFormat: `blt <label>`\n\nExample: `blt loop` branches on a signed less than.",
	"bge":   "Branch Greater Than or Equal Instruction.\n\nFormat: `bge <label>`\n\nExample: `bge loop` branches on a signed greater than or equal.",
	"ble":   "Branch Less Than or Equal Instruction.\n\nFormat: `ble <label>`\n\nExample: `ble loop` branches on a signed less than or equal.",
	"bcs":   "Branch Carry Set Instruction.\n\nFormat: `bcs <label>`\n\nExample: `bcs loop` branches on an unsigned higher or same.",
	"bcc":   "Branch Carry Clear Instruction.\n\nFormat: `bcc <label>`\n\nExample: `bcc loop` branches on an unsigned lower.",
	"bmi":   "Branch Minus Instruction.\n\nFormat: `bmi <label>`\n\nExample: `bmi loop` branches when the N flag is set.",
	"bpl":   "Branch Plus Instruction.\n\nFormat: `bpl <label>`\n\nExample: `bpl loop` branches when the N flag is clear.",
	"bvs":   "Branch Overflow Set Instruction.\n\nFormat: `bvs <label>`\n\nExample: `bvs loop` branches when the V flag is set.",
	"bvc":   "Branch Overflow Clear Instruction.\n\nFormat: `bvc <label>`\n\nExample: `bvc loop` branches when the V flag is clear.",
	"bhi":   "Branch Higher Instruction.\n\nFormat: `bhi <label>`\n\nExample: `bhi loop` branches on an unsigned higher.",
	"bls":   "Branch Lower or Same Instruction.\n\nFormat: `bls <label>`\n\nExample: `bls loop` branches on an unsigned lower or same.",
	"sxth":  "Sign Extend Halfword Instruction.\n\nFormat: `sxth <dst reg>, <src reg>`\n\nExample: `sxth r0, r1` is the same as `r0 = int16_t(r1)`",
	"sxtb":  "Sign Extend Byte Instruction.\n\nFormat: `sxtb <dst reg>, <src reg>`\n\nExample: `sxtb r0, r1` is the same as `r0 = int8_t(r1)`",
	"uxth":  "Zero Extend Halfword Instruction.\n\nFormat: `uxth <dst reg>, <src reg>`\n\nExample: `uxth r0, r1` is the same as `r0 = uint16_t(r1)`",
	"uxtb":  "Zero Extend Byte Instruction.\n\nFormat: `uxtb <dst reg>, <src reg>`\n\nExample: `uxtb r0, r1` is the same as `r0 = uint8_t(r1)`",
	"rev":   "Byte-Reverse Word Instruction.\n\nFormat: `rev <dst reg>, <src reg>`\n\nExample: `rev r0, r1` swaps the endianness of `r1`.",
	"rev16": "Byte-Reverse Packed Halfword Instruction.\n\nFormat: `rev16 <dst reg>, <src reg>`\n\nExample: `rev16 r0, r1` swaps the bytes of each halfword of `r1`.",
	"revsh": "Byte-Reverse Signed Halfword Instruction.\n\nFormat: `revsh <dst reg>, <src reg>`\n\nExample: `revsh r0, r1` swaps the low halfword bytes and sign extends.",
	"svc":   "Supervisor Call Instruction.\n\nFormat: `svc #<imm8>`\n\nExample: `svc #0` raises the SVCall exception.",
	"cpsid": "Disable Interrupts Instruction.\n\nFormat: `cpsid i`\n\nExample: `cpsid i` sets PRIMASK, masking configurable interrupts.",
	"cpsie": "Enable Interrupts Instruction.\n\nFormat: `cpsie i`\n\nExample: `cpsie i` clears PRIMASK.",
	"mrs":   "Move from Special Register Instruction.\n\nFormat: `mrs <dst reg>, <special reg>`\n\nExample: `mrs r0, primask` is the same as `r0 = PRIMASK`",
	"msr":   "Move to Special Register Instruction.\n\nFormat: `msr <special reg>, <src reg>`\n\nExample: `msr msp, r0` is the same as `MSP = r0`",
	"bkpt":  "Breakpoint Instruction.\n\nFormat: `bkpt #<imm8>`\n\nExample: `bkpt #0` halts the core when a debugger is attached.",
}

// MnemonicInfo returns the markdown description of a known mnemonic.
func MnemonicInfo(mnemonic string) (string, bool) {
	info, ok := hoverInfoFormats[strings.ToLower(mnemonic)]
	return info, ok
}
