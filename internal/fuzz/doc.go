// Package fuzztests houses Go fuzz harnesses that exercise the USCL
// scanning pipeline (source -> lexer). Its goal is to smoke test robustness
// and guard against panics or allocator explosions on arbitrary inputs.
//
// It does not generate corpora, write files, or exercise the CLI.
package fuzztests
