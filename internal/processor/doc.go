// Package processor contains the command-line translation workflow. It
// translates single inputs and batch files, prints results, extends the
// dictionary with terms supplied in batch files and saves batch output.
package processor
