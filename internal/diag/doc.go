// Package diag carries diagnostics produced by the USCL toolchain phases.
//
// The scanner is deliberately permissive: its only diagnostic is the
// LexUnknownChar warning, and no diagnostic ever aborts tokenization.
// Error-severity codes exist for the I/O and project layers around it.
package diag
