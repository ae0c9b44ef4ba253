package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const shiftMask = uint16(xproto.ModMaskShift)

// keymap is the server's keycode to keysym table.
type keymap struct {
	min     xproto.Keycode
	per     int
	keysyms []xproto.Keysym
}

func loadKeymap(conn *xgb.Conn, setup *xproto.SetupInfo) (keymap, error) {
	count := int(setup.MaxKeycode) - int(setup.MinKeycode) + 1
	reply, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		return keymap{}, fmt.Errorf("keyboard mapping: %w", err)
	}
	return keymap{min: setup.MinKeycode, per: int(reply.KeysymsPerKeycode), keysyms: reply.Keysyms}, nil
}

// lookup picks the shifted column when Shift is held and one exists.
func (k keymap) lookup(code xproto.Keycode, state uint16) uint32 {
	if k.per == 0 || code < k.min {
		return 0
	}
	base := int(code-k.min) * k.per
	if base >= len(k.keysyms) {
		return 0
	}
	sym := k.keysyms[base]
	if state&shiftMask != 0 && k.per > 1 && base+1 < len(k.keysyms) && k.keysyms[base+1] != 0 {
		sym = k.keysyms[base+1]
	}
	return uint32(sym)
}

var keysymNames = map[uint32]string{
	0x0020: "space",
	0xff08: "BackSpace",
	0xff09: "Tab",
	0xff0d: "Return",
	0xff13: "Pause",
	0xff1b: "Escape",
	0xff50: "Home",
	0xff51: "Left",
	0xff52: "Up",
	0xff53: "Right",
	0xff54: "Down",
	0xff55: "Prior",
	0xff56: "Next",
	0xff57: "End",
	0xff63: "Insert",
	0xff8d: "KP_Enter",
	0xffe1: "Shift_L",
	0xffe2: "Shift_R",
	0xffe3: "Control_L",
	0xffe4: "Control_R",
	0xffe5: "Caps_Lock",
	0xffe9: "Alt_L",
	0xffea: "Alt_R",
	0xffeb: "Super_L",
	0xffec: "Super_R",
	0xffff: "Delete",
}

// keysymName follows XKeysymToString for the keys the demos care about and
// falls back to the character itself for other Latin-1 keysyms.
func keysymName(sym uint32) string {
	if name, ok := keysymNames[sym]; ok {
		return name
	}
	switch {
	case sym >= 0xffbe && sym <= 0xffd5:
		return fmt.Sprintf("F%d", sym-0xffbe+1)
	case sym > 0x20 && sym <= 0xff:
		return string(rune(sym))
	case sym >= 0x01000100 && sym <= 0x0110ffff:
		return string(rune(sym - 0x01000000))
	case sym == 0:
		return ""
	}
	return fmt.Sprintf("0x%x", sym)
}
