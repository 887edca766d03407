package machine

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/go-sm83/internal/cpu"
)

// Line is a single disassembled instruction.
type Line struct {
	Address uint16
	Bytes   []byte
	Text    string
}

func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-9s %s", l.Address, strings.Join(hex, " "), l.Text)
}

// Disassemble decodes count instructions starting at from. Reading
// memory through the CPU means attached peripherals are consulted.
func (m *Machine) Disassemble(from uint16, count int) []Line {
	lines := make([]Line, 0, count)
	address := from
	for i := 0; i < count; i++ {
		line := m.disassembleAt(address)
		lines = append(lines, line)
		address += uint16(len(line.Bytes))
	}
	return lines
}

func (m *Machine) disassembleAt(address uint16) Line {
	d := cpu.Decode(m.CPU.FetchByte(address))
	if d.Op == cpu.OpPrefix {
		d = cpu.DecodeCB(m.CPU.FetchByte(address + 1))
	}

	raw := make([]byte, d.Length)
	for i := range raw {
		raw[i] = m.CPU.FetchByte(address + uint16(i))
	}

	text := d.String()
	switch {
	case d.Prefixed:
	case d.Length == 3:
		word := fmt.Sprintf("$%04X", uint16(raw[2])<<8|uint16(raw[1]))
		text = strings.NewReplacer("n16", word, "a16", word).Replace(text)
	case d.Length == 2:
		b := fmt.Sprintf("$%02X", raw[1])
		offset := int8(raw[1])
		target := fmt.Sprintf("$%04X", uint16(int32(address)+2+int32(offset)))
		if d.Op == cpu.OpJr || d.Op == cpu.OpJrCond {
			text = strings.Replace(text, "e8", target, 1)
		} else {
			signed := fmt.Sprintf("%+d", offset)
			text = strings.NewReplacer("+e8", signed, "e8", signed, "n8", b, "a8", b).Replace(text)
		}
	}

	return Line{Address: address, Bytes: raw, Text: text}
}
