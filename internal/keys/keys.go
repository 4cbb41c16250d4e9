// Package keys maps Linux evdev key codes to the engine's key symbols.
package keys

// Key is a normalized key symbol.
type Key int

const (
	None Key = iota

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7
	K8
	K9

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Left
	Right
	Space
	Tab
	Shift
	Ctrl
	Ins
	Del
	Home
	End
	PgUp
	PgDn
	Back
	Escape
	Return // numeric keypad Enter
	Enter
	Pause
	Scroll

	NP0
	NP1
	NP2
	NP3
	NP4
	NP5
	NP6
	NP7
	NP8
	NP9
	NPMul
	NPDiv
	NPAdd
	NPSub
	NPDecimal

	Period
	Equals
	Comma
	Minus

	OEM1 // ;
	OEM2 // /
	OEM3 // `
	OEM4 // [
	OEM5 // \
	OEM6 // ]
	OEM7 // '
	OEM8 // 102nd key
	CapsLock

	keyCount
)

// Count is the number of key symbols, including None.
const Count = int(keyCount)

var names = [...]string{
	None: "NONE",
	A:    "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
	K0: "K0", K1: "K1", K2: "K2", K3: "K3", K4: "K4",
	K5: "K5", K6: "K6", K7: "K7", K8: "K8", K9: "K9",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Up: "UP", Down: "DOWN", Left: "LEFT", Right: "RIGHT",
	Space: "SPACE", Tab: "TAB", Shift: "SHIFT", Ctrl: "CTRL",
	Ins: "INS", Del: "DEL", Home: "HOME", End: "END", PgUp: "PGUP", PgDn: "PGDN",
	Back: "BACK", Escape: "ESCAPE", Return: "RETURN", Enter: "ENTER",
	Pause: "PAUSE", Scroll: "SCROLL",
	NP0: "NP0", NP1: "NP1", NP2: "NP2", NP3: "NP3", NP4: "NP4",
	NP5: "NP5", NP6: "NP6", NP7: "NP7", NP8: "NP8", NP9: "NP9",
	NPMul: "NP_MUL", NPDiv: "NP_DIV", NPAdd: "NP_ADD", NPSub: "NP_SUB", NPDecimal: "NP_DECIMAL",
	Period: "PERIOD", Equals: "EQUALS", Comma: "COMMA", Minus: "MINUS",
	OEM1: "OEM_1", OEM2: "OEM_2", OEM3: "OEM_3", OEM4: "OEM_4",
	OEM5: "OEM_5", OEM6: "OEM_6", OEM7: "OEM_7", OEM8: "OEM_8",
	CapsLock: "CAPS_LOCK",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "NONE"
	}
	return names[k]
}
