// Package display renders the read-only pane that shows the document with a
// given paragraph direction.
//
// Direction is presentation only. Rows are wrapped in logical order and
// aligned to the leading edge of the direction (right for RTL); with marks
// enabled each row is wrapped in a Unicode directional isolate so that
// bidi-aware terminals lay it out right-to-left. The characters of the
// document are never reordered, reshaped or dropped.
package display
