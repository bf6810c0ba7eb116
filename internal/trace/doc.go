// Package trace provides lightweight observability for the USCL toolchain.
//
// The scanner emits two debug-level events per file (character count in,
// token count out); the driver emits phase boundaries. Tracing is a side
// channel only and never changes scanning behavior.
//
// Enable via the CLI:
//
//	uscl tokenize --trace=debug main.ul
package trace
