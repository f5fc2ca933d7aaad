// Package hover turns a cursor position in a document into a translation.
// Comments under the cursor are translated as a whole; otherwise the
// identifier at the cursor is. Repeated requests for the same text within
// the debounce delay are ignored.
package hover
