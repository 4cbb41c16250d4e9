package keys

// Linux input-event-codes.h
const (
	codeEsc        = 1
	code1          = 2
	code0          = 11
	codeMinus      = 12
	codeEqual      = 13
	codeBackspace  = 14
	codeTab        = 15
	codeLeftBrace  = 26
	codeRightBrace = 27
	codeEnter      = 28
	codeLeftCtrl   = 29
	codeSemicolon  = 39
	codeApostrophe = 40
	codeGrave      = 41
	codeLeftShift  = 42
	codeBackslash  = 43
	codeComma      = 51
	codeDot        = 52
	codeSlash      = 53
	codeRightShift = 54
	codeKPAsterisk = 55
	codeSpace      = 57
	codeCapsLock   = 58
	codeF1         = 59
	codeF10        = 68
	codeScrollLock = 70
	codeKP7        = 71
	codeKP8        = 72
	codeKP9        = 73
	codeKPMinus    = 74
	codeKP4        = 75
	codeKP5        = 76
	codeKP6        = 77
	codeKPPlus     = 78
	codeKP1        = 79
	codeKP2        = 80
	codeKP3        = 81
	codeKP0        = 82
	codeKPDot      = 83
	code102nd      = 86
	codeF11        = 87
	codeF12        = 88
	codeKPEnter    = 96
	codeRightCtrl  = 97
	codeKPSlash    = 98
	codeHome       = 102
	codeUp         = 103
	codePageUp     = 104
	codeLeft       = 105
	codeRight      = 106
	codeEnd        = 107
	codeDown       = 108
	codePageDown   = 109
	codeInsert     = 110
	codeDelete     = 111
	codePause      = 119
)

// Letter rows are not contiguous in the evdev numbering.
var letters = map[uint16]Key{
	16: Q, 17: W, 18: E, 19: R, 20: T, 21: Y, 22: U, 23: I, 24: O, 25: P,
	30: A, 31: S, 32: D, 33: F, 34: G, 35: H, 36: J, 37: K, 38: L,
	44: Z, 45: X, 46: C, 47: V, 48: B, 49: N, 50: M,
}

var table = buildTable()

func buildTable() map[uint16]Key {
	t := make(map[uint16]Key, 128)
	for code, k := range letters {
		t[code] = k
	}

	// 1..9 then 0
	for i := uint16(0); i < 9; i++ {
		t[code1+i] = K1 + Key(i)
	}
	t[code0] = K0

	for i := uint16(0); i < 10; i++ {
		t[codeF1+i] = F1 + Key(i)
	}
	t[codeF11] = F11
	t[codeF12] = F12

	for code, k := range map[uint16]Key{
		codeUp:    Up,
		codeDown:  Down,
		codeLeft:  Left,
		codeRight: Right,

		codeSpace:     Space,
		codeTab:       Tab,
		codeLeftShift: Shift, codeRightShift: Shift,
		codeLeftCtrl: Ctrl, codeRightCtrl: Ctrl,
		codeInsert:     Ins,
		codeDelete:     Del,
		codeHome:       Home,
		codeEnd:        End,
		codePageUp:     PgUp,
		codePageDown:   PgDn,
		codeBackspace:  Back,
		codeEsc:        Escape,
		codeEnter:      Enter,
		codeKPEnter:    Return,
		codePause:      Pause,
		codeScrollLock: Scroll,
		codeCapsLock:   CapsLock,

		codeKP0: NP0, codeKP1: NP1, codeKP2: NP2, codeKP3: NP3, codeKP4: NP4,
		codeKP5: NP5, codeKP6: NP6, codeKP7: NP7, codeKP8: NP8, codeKP9: NP9,
		codeKPAsterisk: NPMul,
		codeKPSlash:    NPDiv,
		codeKPPlus:     NPAdd,
		codeKPMinus:    NPSub,
		codeKPDot:      NPDecimal,

		codeDot:   Period,
		codeEqual: Equals,
		codeComma: Comma,
		codeMinus: Minus,

		codeSemicolon:  OEM1,
		codeSlash:      OEM2,
		codeGrave:      OEM3,
		codeLeftBrace:  OEM4,
		codeBackslash:  OEM5,
		codeRightBrace: OEM6,
		codeApostrophe: OEM7,
		code102nd:      OEM8,
	} {
		t[code] = k
	}
	return t
}

// Translate returns the key symbol for a raw evdev key code, or None when the
// code is not part of the table.
func Translate(code uint16) Key {
	if k, ok := table[code]; ok {
		return k
	}
	return None
}
