//go:build !memdebug

package mmu

// checkAddress is a no-op outside of memdebug builds.
func (m *MMU) checkAddress(string, int) {}
