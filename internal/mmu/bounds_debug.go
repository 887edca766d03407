//go:build memdebug

package mmu

import "os"

var exit = os.Exit

// checkAddress terminates the process on an access outside of the
// address space. Continuing would risk silently corrupting state.
func (m *MMU) checkAddress(op string, address int) {
	if address < 0 || address >= Size {
		m.Log.Errorf("%s: invalid memory access at 0x%X", op, address)
		exit(1)
	}
}
